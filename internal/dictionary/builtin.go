package dictionary

// Builtin returns the stock synonym, misspelling and file-format tables.
func Builtin() *Dictionaries {
	return &Dictionaries{
		Synonyms: NewSynonymTable(builtinSynonyms()),
		Typos:    NewTypoTable(builtinTypos()),
		Formats:  NewTypoTable(builtinFormatTypos()),
		Domain:   NewSynonymTable(builtinDomain()),
	}
}

// Several keys below are declared twice. The later declaration supplies the
// variants; the key keeps the position of the first one.
func builtinSynonyms() []Entry {
	return []Entry{
		// Core operation verbs
		{Term: "convert", Variants: []string{
			"change", "transform", "turn", "make", "export", "switch", "rewrite", "reformat",
		}},
		{Term: "extract", Variants: []string{
			"pull", "get", "grab", "remove", "take", "copy", "rip", "mine", "liberate",
		}},
		{Term: "merge", Variants: []string{
			"combine", "join", "unite", "concatenate", "bind", "link", "fuse", "assemble",
			"amalgamate",
		}},
		{Term: "split", Variants: []string{
			"separate", "cut", "divide", "break", "partition", "slice", "carve", "dissect",
		}},
		{Term: "add", Variants: []string{
			"insert", "put", "include", "attach", "overlay", "imprint", "stamp", "superimpose",
		}},
		{Term: "remove", Variants: []string{
			"delete", "strip", "clear", "eliminate", "erase", "take out", "delete", "purge",
		}},
		{Term: "lock", Variants: []string{
			"encrypt", "protect", "secure", "password", "seal", "restrict", "block", "safeguard",
		}},
		{Term: "unlock", Variants: []string{
			"decrypt", "remove password", "open", "unseal", "unrestrict", "unblock", "unprotect",
		}},
		{Term: "compress", Variants: []string{
			"zip", "archive", "bundle", "pack", "reduce", "shrink", "compact", "condense",
		}},
		{Term: "extract", Variants: []string{
			"unzip", "unarchive", "unpack", "decompress", "expand", "unbundle", "extract",
			"uncompress",
		}},
		{Term: "search", Variants: []string{
			"find", "lookup", "query", "grep", "locate", "scan", "hunt", "seek",
		}},
		{Term: "resize", Variants: []string{
			"scale", "adjust", "change size", "resize dimensions", "reshape", "modify size",
		}},
		{Term: "detect", Variants: []string{
			"identify", "recognize", "determine", "figure out", "analyze", "recognize",
		}},

		// File format synonyms
		{Term: "pdf", Variants: []string{
			"pdf file", "document", "adobe", "portable document", "pdf doc", "acrobat",
		}},
		{Term: "word", Variants: []string{
			"docx", "doc", "word document", "microsoft word", "word file", "ms word",
		}},
		{Term: "excel", Variants: []string{
			"xlsx", "xls", "spreadsheet", "worksheet", "excel file", "workbook", "xls file",
		}},
		{Term: "powerpoint", Variants: []string{
			"ppt", "pptx", "presentation", "slides", "slide deck", "powerpoint file", "slideshow",
		}},
		{Term: "text", Variants: []string{"txt", "plain text", "notepad", "text file", "ascii", "plaintext"}},
		{Term: "image", Variants: []string{
			"picture", "photo", "jpg", "png", "webp", "image file", "graphic", "photograph",
			"screenshot", "snapshot", "capture", "scan", "pic", "img", "image to pdf", "convert image",
			"photo to pdf", "picture to pdf", "screenshot to pdf",
		}},
		{Term: "jpeg", Variants: []string{
			"jpg", "jpeg file", "jpg image", "jpeg image", "joint photographic experts group", "jpe",
		}},
		{Term: "png", Variants: []string{"png file", "png image", "portable network graphics", "ping"}},
		{Term: "webp", Variants: []string{"webp file", "webp image", "web picture", "web image", "wep"}},
		{Term: "bmp", Variants: []string{
			"bmp file", "bmp image", "bitmap", "bitmap image", "dib", "device independent bitmap",
		}},
		{Term: "archive", Variants: []string{
			"zip", "compressed", "archive file", "zip file", "rar", "7z", "tar",
		}},

		// Image to PDF specific
		{Term: "image to pdf", Variants: []string{
			"convert image to pdf", "picture to pdf", "photo to pdf", "screenshot to pdf",
			"images to pdf", "combine images to pdf", "merge images to pdf", "make pdf from image",
			"create pdf from images", "jpg to pdf", "png to pdf", "jpeg to pdf", "webp to pdf",
			"batch image to pdf", "multiple images to pdf", "bulk image to pdf",
		}},
		{Term: "photo", Variants: []string{
			"photo", "photograph", "pic", "pix", "image", "picture", "snapshot", "capture",
		}},
		{Term: "picture", Variants: []string{
			"picture", "pic", "image", "photo", "photograph", "snapshot", "capture",
		}},
		{Term: "screenshot", Variants: []string{
			"screenshot", "screen shot", "screen capture", "print screen", "printscreen", "capture",
		}},
		{Term: "scan", Variants: []string{
			"scan", "scanned", "scan to pdf", "scanned document", "scanned image", "digitized",
		}},
		{Term: "convert", Variants: []string{
			"convert", "transform", "turn", "make", "export", "switch", "rewrite", "reformat",
			"create", "generate", "produce", "build", "form", "make new",
		}},

		// Document-related
		{Term: "document", Variants: []string{"doc", "file", "paper", "text", "content", "file"}},
		{Term: "spreadsheet", Variants: []string{"sheet", "workbook", "excel file", "data sheet", "grid"}},
		{Term: "presentation", Variants: []string{"slides", "deck", "powerpoint", "slideshow", "slide show"}},
		{Term: "watermark", Variants: []string{
			"stamp", "overlay", "brand", "copyright", "mark", "label", "sign", "seal",
		}},

		// Actions
		{Term: "create", Variants: []string{
			"make", "generate", "produce", "build", "form", "make new", "produce",
		}},
		{Term: "edit", Variants: []string{"modify", "change", "alter", "revise", "update", "amend"}},
		{Term: "protect", Variants: []string{"secure", "guard", "shield", "safeguard", "defend", "preserve"}},
		{Term: "share", Variants: []string{"send", "upload", "distribute", "transfer", "email", "publish"}},
		{Term: "download", Variants: []string{"save", "export", "get", "grab", "pull", "obtain"}},

		// OCR-related
		{Term: "ocr", Variants: []string{
			"optical character recognition", "text recognition", "scan text", "image to text",
			"character recognition",
		}},
		{Term: "scan", Variants: []string{"photograph", "capture", "digitize", "image capture", "photo"}},

		// Quality
		{Term: "high quality", Variants: []string{
			"high", "best", "maximum", "premium", "hd", "ultra", "premium quality",
		}},
		{Term: "low quality", Variants: []string{
			"low", "small", "compressed", "draft", "preview", "thumbnail",
		}},
		{Term: "medium quality", Variants: []string{"medium", "balanced", "standard", "normal", "regular"}},
	}
}

func builtinTypos() []Entry {
	return []Entry{
		// File formats
		{Term: "pdf", Variants: []string{"pfd", "dff", "fdp", "pdf", "pof", "pfg", "ptf"}},
		{Term: "docx", Variants: []string{"doc", "docx", "dox", "dcx", "dcox", "doxc", "ddocx"}},
		{Term: "excel", Variants: []string{"exel", "excell", "exel", "xls", "xslx", "exel", "ecksel"}},
		{Term: "powerpoint", Variants: []string{"ppt", "pptx", "pp", "pttx", "pont", "pppt", "ppttx"}},
		{Term: "jpeg", Variants: []string{"jpg", "jpef", "jpge", "peg", "jepeg", "jepg", "jppeg"}},
		{Term: "png", Variants: []string{"pgn", "png", "pnn", "pnig", "pmg", "pimg", "pnog"}},
		{Term: "webp", Variants: []string{"web", "wpb", "wep", "werp", "wrbp", "webr", "wepb"}},
		{Term: "bmp", Variants: []string{"bmp", "bm", "bnp", "bmp", "mbp", "bmp", "bmnp"}},
		{Term: "xlsx", Variants: []string{"xls", "xlsx", "exel", "exls", "xslx", "xlsz"}},
		{Term: "txt", Variants: []string{"text", "tx", "tst", "txt", "tzt"}},

		// Operations
		{Term: "convert", Variants: []string{
			"convet", "convrt", "conver", "convrt", "cnovert", "convret", "convetr",
		}},
		{Term: "merge", Variants: []string{"mergr", "merg", "mege", "mrege", "mereg", "mereg", "marge"}},
		{Term: "split", Variants: []string{"spli", "spllt", "spli", "spilt", "splut", "slipt", "spllt"}},
		{Term: "extract", Variants: []string{
			"extrat", "extrct", "exract", "extract", "extact", "exract", "extrat",
		}},
		{Term: "compress", Variants: []string{
			"compres", "compres", "comprss", "cmpress", "compres", "compress", "compres",
		}},
		{Term: "unlock", Variants: []string{"unlok", "unlcok", "unlok", "unlck", "ulock", "unlk", "unlok"}},
		{Term: "encrypt", Variants: []string{
			"encryp", "encryt", "encrpt", "encrypt", "encrupt", "encryt", "encryp",
		}},
		{Term: "watermark", Variants: []string{
			"wateramrk", "watrmark", "wtrmark", "watermark", "watrmak", "watermark", "wtermark",
		}},
		{Term: "password", Variants: []string{
			"pasword", "paswrd", "pasword", "pwd", "passwrd", "pasword", "passwod",
		}},
		{Term: "document", Variants: []string{
			"documen", "documnt", "documet", "docment", "dociument", "documnt", "documemt",
		}},
		{Term: "spreadsheet", Variants: []string{
			"spreadhseet", "spradsheet", "spredsheet", "spresheet", "spradsheet", "spreadheet",
			"spresheet",
		}},
		{Term: "presentation", Variants: []string{
			"presentaion", "presntation", "presentaton", "presentaion", "presntation", "presentaion",
			"presntation",
		}},
		{Term: "resize", Variants: []string{
			"reszie", "reesize", "reszie", "rszie", "resiez", "reszie", "reszie",
		}},
		{Term: "rotation", Variants: []string{
			"roation", "rotaion", "rotaton", "rotaion", "rotatoin", "roatino", "rotaton",
		}},
		{Term: "language", Variants: []string{
			"lnguage", "langauge", "languge", "langage", "lnaguage", "langauge", "lnguage",
		}},
		{Term: "detection", Variants: []string{
			"detectin", "detecion", "dection", "detectin", "detecction", "detecion", "detectin",
		}},

		// Common words
		{Term: "image", Variants: []string{
			"imgae", "imge", "imgae", "img", "igmage", "imgae", "imge", "image pdf", "imagepdf",
			"imgpdf",
		}},
		{Term: "picture", Variants: []string{
			"picure", "pictur", "pictue", "picure", "pictur", "pictue", "pcture", "picture pdf",
		}},
		{Term: "photo", Variants: []string{
			"poto", "phoo", "phoot", "poto", "phoo", "phoot", "phoro", "photo pdf", "photopdf",
		}},
		{Term: "screenshot", Variants: []string{
			"screenshot", "screen shot", "screen capture", "print screen", "printscreen", "capture",
			"screenshot pdf", "screen capture pdf", "screen shot pdf",
		}},
		{Term: "combine", Variants: []string{
			"combne", "combie", "combin", "combie", "combine pictures", "combine images",
			"combine photos",
		}},
		{Term: "merge", Variants: []string{
			"mergr", "merg", "mege", "mrege", "mereg", "mereg", "marge", "merge images",
			"merge photos",
		}},
		{Term: "pdf", Variants: []string{
			"pfd", "dff", "fdp", "pdf", "pof", "pfg", "ptf", "pdf file", "pdf document",
		}},

		// OCR-related
		{Term: "ocr", Variants: []string{"orc", "ocr", "orc", "ocr", "ocr", "ocr", "orc"}},
		{Term: "optical", Variants: []string{
			"optial", "opticl", "optcal", "optial", "opticl", "optcal", "optial",
		}},
		{Term: "character", Variants: []string{
			"caracter", "charater", "charcter", "caracter", "charater", "charcter", "caractr",
		}},
		{Term: "recognition", Variants: []string{
			"recognition", "recodnition", "recogition", "recogniton", "recodnition", "recogition",
			"recogniton",
		}},

		// File-related
		{Term: "folder", Variants: []string{"folder", "foldr", "foler", "flder", "folde", "foldr", "foler"}},
		{Term: "files", Variants: []string{"file", "fil", "fiels", "fiels", "filez", "filz", "fiels"}},
		{Term: "upload", Variants: []string{"uploa", "uplod", "uplaod", "uploa", "uplod", "uplaod", "uplad"}},
		{Term: "download", Variants: []string{
			"downlod", "downlaod", "downloa", "downlod", "downlaod", "downloa", "download",
		}},
		{Term: "select", Variants: []string{"selct", "selcet", "slct", "selct", "slcet", "selcet", "slct"}},

		// Quality
		{Term: "quality", Variants: []string{
			"qulity", "qualty", "qualiti", "qulity", "qualty", "qualiti", "qualt",
		}},
		{Term: "resolution", Variants: []string{
			"resulution", "resoltion", "reslution", "resulution", "resoltion", "reslution",
			"resulotion",
		}},
		{Term: "transparent", Variants: []string{
			"transparrent", "transparant", "transperent", "transparrent", "transparant", "transperent",
			"transparnt",
		}},

		// Security
		{Term: "encrypt", Variants: []string{
			"encryp", "encryt", "encrpt", "encrypt", "encrupt", "encryt", "encryp",
		}},
		{Term: "decrypt", Variants: []string{
			"decryp", "decryt", "decrpt", "decrypt", "decrpyt", "decryt", "decryp",
		}},
		{Term: "security", Variants: []string{
			"secuirty", "secuity", "securty", "secuirty", "secuity", "securty", "secirity",
		}},
		{Term: "password", Variants: []string{
			"pasword", "paswrd", "password", "pwd", "passwrd", "pasword", "passwod",
		}},

		// Image formats
		{Term: "bitmap", Variants: []string{
			"bitmat", "bitmpa", "bitmp", "bitmat", "bitmpa", "bitmp", "bitm",
		}},
		{Term: "picture", Variants: []string{
			"picure", "pictur", "pictue", "picure", "pictur", "pictue", "pcture",
		}},
		{Term: "photo", Variants: []string{"poto", "phoo", "phoot", "poto", "phoo", "phoot", "phoro"}},
		{Term: "format", Variants: []string{
			"fomrat", "fromat", "frormat", "fomrat", "fromat", "frormat", "frmat",
		}},
	}
}

// builtinFormatTypos lists misspellings of the file formats users most often
// type; ranked typo suggestions propose the format itself.
func builtinFormatTypos() []Entry {
	return []Entry{
		{Term: "pdf", Variants: []string{"pfd", "dff", "pdf", "fdp"}},
		{Term: "docx", Variants: []string{"doc", "docx", "dcx", "dox"}},
		{Term: "excel", Variants: []string{"exel", "exel", "xls"}},
		{Term: "powerpoint", Variants: []string{"ppt", "pptx", "pp"}},
	}
}

// builtinDomain lists, per file-operation concept, the words people use for
// it. A query word that contains a key or is contained in one pulls in the
// whole list.
func builtinDomain() []Entry {
	return []Entry{
		// Formats
		{Term: "pdf", Variants: []string{"pdf", "pdf file", "document", "adobe", "portable document format"}},
		{Term: "docx", Variants: []string{"docx", "word", "word document", "microsoft word", "doc", "document"}},
		{Term: "excel", Variants: []string{"excel", "xlsx", "spreadsheet", "worksheet", "table", "data"}},
		{Term: "powerpoint", Variants: []string{"powerpoint", "ppt", "pptx", "presentation", "slides", "slideshow"}},
		{Term: "jpg", Variants: []string{"jpg", "jpeg", "jpg image", "photo", "picture"}},
		{Term: "png", Variants: []string{"png", "png image", "transparent image"}},
		{Term: "webp", Variants: []string{"webp", "web picture", "web image", "optimized"}},
		{Term: "bmp", Variants: []string{"bmp", "bitmap", "raster image"}},

		// Actions
		{Term: "convert", Variants: []string{"convert", "transform", "change", "export", "save as"}},
		{Term: "merge", Variants: []string{"merge", "combine", "join", "unite", "concatenate"}},
		{Term: "split", Variants: []string{"split", "separate", "divide", "extract"}},
		{Term: "extract", Variants: []string{"extract", "pull", "get", "grab", "take out"}},
		{Term: "compress", Variants: []string{"compress", "zip", "archive", "bundle", "reduce"}},
		{Term: "lock", Variants: []string{"lock", "encrypt", "protect", "secure", "password"}},
		{Term: "unlock", Variants: []string{"unlock", "decrypt", "remove password", "open"}},
	}
}
