package catalog

// Category names used by the built-in catalog.
const (
	CategoryDocument  = "DOCUMENT OPERATIONS"
	CategoryPDF       = "PDF OPERATIONS"
	CategoryImage     = "IMAGE OPERATIONS"
	CategoryOCR       = "OCR OPERATIONS"
	CategoryArchive   = "ARCHIVE OPERATIONS"
	CategorySearch    = "SEARCH OPERATIONS"
	CategoryWatermark = "WATERMARK OPERATIONS"
)

// Builtin returns the FileLab operation catalog.
func Builtin() *Catalog {
	return MustNew(builtinEntries())
}

func builtinEntries() []OperationEntry {
	return []OperationEntry{
		// Document conversions
		{
			ID: "pdfToDocx", Label: "PDF TO DOCX", Category: CategoryDocument,
			Keywords: []string{
				"pdf to word", "pdf to docx", "pdf to doc", "convert pdf to word", "pdf word converter",
				"pdf document to word", "pdf edit", "pdf conversion", "pdf to microsoft word",
				"adobe pdf to word", "export pdf to word", "pdf converter", "change pdf to word",
				"how to convert pdf to word", "turn pdf into word", "pdf to editable word",
				"pdf to doc online", "pdf to word free", "convert pdf document to word",
				"pdf file to word", "pdf file to docx", "pdf file to doc", "pdf text to word",
				"open pdf in word", "edit pdf in word", "pdf content to word", "pdf reader to word",
				"pdf to word software", "pdf to word tool", "convert pdf text to word",
			},
			Description: "Convert PDF to DOCX",
			Tip:         "Best for text-based PDFs. Scanned documents may need OCR processing first for best results.",
		},
		{
			ID: "docxToPdf", Label: "DOCX TO PDF", Category: CategoryDocument,
			Keywords: []string{
				"word to pdf", "docx to pdf", "doc to pdf", "convert word to pdf", "word pdf converter",
				"document to pdf", "word document pdf", "microsoft word to pdf", "export word to pdf",
				"how to convert word to pdf", "save word as pdf", "turn word into pdf",
				"word file to pdf", "docx file to pdf", "doc file to pdf", "convert doc to pdf",
				"convert docx to pdf online", "word export pdf", "word document export pdf",
			},
			Description: "Convert DOCX to PDF",
			Tip:         "Preserves formatting. Large documents with images may take longer to convert.",
		},
		{
			ID: "docToDocx", Label: "DOC TO DOCX", Category: CategoryDocument,
			Keywords: []string{
				"doc to docx", "doc to word", "convert doc to docx", "convert doc to word",
				"legacy word to new word", "doc file converter", "word doc to docx",
				"microsoft doc to docx", "convert legacy word to new format", "docx converter",
				"upgrade word", "old word format",
			},
			Description: "DOC to DOCX",
			Tip:         "Converts old DOC format to modern DOCX for better compatibility with Word 2007+.",
		},
		{
			ID: "docxToDoc", Label: "DOCX TO DOC", Category: CategoryDocument,
			Keywords: []string{
				"docx to doc", "docx to word", "convert docx to doc", "convert docx to word",
				"word docx to legacy", "docx file to doc", "microsoft docx to doc",
				"new word to legacy word", "word document to old format", "doc converter",
				"downgrade word", "old word format",
			},
			Description: "DOCX to DOC",
			Tip:         "Useful when sharing with users using older versions of Word (97-2003).",
		},
		{
			ID: "pdfToText", Label: "PDF TO TEXT", Category: CategoryDocument,
			Keywords: []string{
				"pdf to text", "pdf extract text", "pdf to txt", "extract text from pdf", "pdf text extractor",
				"pdf to plain text", "pdf content extraction", "pdf reader text", "pdf to notepad",
				"convert pdf to text", "turn pdf into txt", "get text from pdf", "pdf text converter",
				"extract pdf content", "pdf text file", "pdf document to text", "pdf text copy",
				"pdf text online", "copy pdf text", "convert pdf pages to text",
			},
			Description: "Extract text from PDF",
			Tip:         "Quickly extract all text content. Perfect for copying to other documents or analysis.",
		},
		{
			ID: "textToPdf", Label: "TEXT TO PDF", Category: CategoryDocument,
			Keywords: []string{
				"text to pdf", "txt to pdf", "convert text to pdf", "text file to pdf",
				"plain text to pdf", "notepad to pdf", "create pdf from text", "convert txt to pdf",
				"turn text into pdf", "save text as pdf", "txt file pdf converter",
				"text document to pdf", "generate pdf from text", "make pdf from txt", "export text to pdf",
			},
			Description: "Convert Text to PDF",
			Tip:         "Upload a .txt file to create a formatted PDF document.",
		},
		{
			ID: "textToDocx", Label: "TEXT TO DOCX", Category: CategoryDocument,
			Keywords: []string{
				"text to docx", "txt to docx", "convert text to word", "plain text to word",
				"text file to word", "create word document from text", "txt to word", "convert txt to docx",
				"generate word document", "make word file from text", "export text to word",
				"turn txt into docx", "convert text document to word",
			},
			Description: "Convert Text to DOCX",
			Tip:         "Convert plain text files to editable Word documents with basic formatting.",
		},
		{
			ID: "pdfToExcel", Label: "PDF TO EXCEL", Category: CategoryDocument,
			Keywords: []string{
				"pdf to excel", "pdf to xlsx", "pdf to spreadsheet", "pdf table extraction", "pdf to csv",
				"extract tables from pdf", "pdf excel converter", "pdf data extraction", "convert pdf table to excel",
				"pdf to worksheet", "scan pdf to excel", "image pdf to excel", "pdf spreadsheet conversion",
				"convert pdf to xls", "pdf sheet extractor", "turn pdf tables into excel", "pdf data to excel",
				"extract table", "table data",
			},
			Description: "Convert PDF to Excel",
			Tip:         "Best for PDFs with tables. Scanned PDFs will need OCR processing first.",
		},
		{
			ID: "excelToPdf", Label: "EXCEL TO PDF", Category: CategoryDocument,
			Keywords: []string{
				"excel to pdf", "xlsx to pdf", "spreadsheet to pdf", "excel pdf converter",
				"convert excel to pdf", "worksheet to pdf", "table to pdf", "convert xls to pdf",
				"save excel as pdf", "export spreadsheet to pdf", "turn excel file into pdf",
				"excel file pdf conversion", "excel sheet to pdf", "generate pdf from excel",
			},
			Description: "Convert Excel to PDF",
			Tip:         "Converts all worksheets. Use page settings to control how data is spread across pages.",
		},
		{
			ID: "pdfToPpt", Label: "PDF TO POWERPOINT", Category: CategoryDocument,
			Keywords: []string{
				"pdf to powerpoint", "pdf to ppt", "pdf to presentation", "pdf slides to powerpoint",
				"convert pdf to ppt", "pdf to slideshow", "pdf presentation converter", "turn pdf into ppt",
				"pdf file to powerpoint", "pdf export ppt", "make powerpoint from pdf", "pdf pages to slides",
				"slides", "presentation",
			},
			Description: "Convert PDF to PowerPoint",
			Tip:         "Each PDF page becomes a slide. Text is editable but complex layouts may need adjustments.",
		},
		{
			ID: "pptxToPdf", Label: "POWERPOINT TO PDF", Category: CategoryDocument,
			Keywords: []string{
				"powerpoint to pdf", "ppt to pdf", "presentation to pdf", "convert powerpoint to pdf",
				"slides to pdf", "pptx pdf converter", "export presentation to pdf", "turn ppt into pdf",
				"save powerpoint as pdf", "convert pptx to pdf online", "ppt file pdf conversion",
			},
			Description: "Convert PowerPoint to PDF",
			Tip:         "Choose whether to include hidden slides and what layout to use for handouts.",
		},
		{
			ID: "imageToPdf", Label: "IMAGE TO PDF", Category: CategoryDocument,
			Keywords: []string{
				"image to pdf", "images to pdf", "convert image to pdf", "convert images to pdf",
				"image pdf", "images pdf", "imagepdf", "imagespdf",
				"img to pdf", "imge to pdf", "imgae to pdf", "img to pd", "image to pf",
				"image to pfd", "images to pd", "images to pfd", "image to df",
				"img2pdf", "images2pdf", "image2pdf", "imagetopdf", "imagestopdf",
				"jpg to pdf", "png to pdf", "jpeg to pdf", "bmp to pdf", "webp to pdf",
				"tiff to pdf", "gif to pdf", "heic to pdf", "raw to pdf",
				"photo to pdf", "photos to pdf", "photo pdf", "photos pdf",
				"foto to pdf", "photograph to pdf", "pic to pdf", "pics to pdf", "pix to pdf",
				"picture to pdf", "pictures to pdf",
				"screenshot to pdf", "screen shot to pdf", "screen capture to pdf",
				"print screen to pdf", "printscreen to pdf", "snip to pdf", "capture to pdf",
				"scan to pdf", "scanned to pdf", "scanner to pdf", "scan pdf", "scanned pdf",
				"digitize to pdf", "digitized to pdf",
				"convert picture to pdf", "convert photo to pdf", "convert screenshot to pdf",
				"make pdf from image", "make pdf from images", "create pdf from image",
				"create pdf from images", "generate pdf from image", "turn image into pdf",
				"transform image to pdf", "change image to pdf", "save image as pdf",
				"combine images to pdf", "combine pictures to pdf", "multiple images to pdf",
				"batch images to pdf", "bulk image to pdf", "merge images into pdf",
				"merge pictures into pdf", "join images to pdf", "merge photos to pdf",
				"add images to pdf", "append images to pdf",
				"photo to document", "picture to document", "image to document",
				"image to pdf converter", "photo to pdf converter", "jpg png to pdf",
				"gallery to pdf", "export image to pdf", "image conversion pdf",
			},
			Description: "Convert Images to PDF",
			Tip:         "Select multiple images and they will be combined into a single PDF in the order shown. Supports JPG, PNG, WEBP, BMP, TIFF, GIF, HEIC and more.",
		},

		// PDF operations
		{
			ID: "lockPdf", Label: "LOCK PDF", Category: CategoryPDF,
			Keywords: []string{
				"lock pdf", "pdf lock", "password protect pdf", "encrypt pdf", "secure pdf",
				"pdf encryption", "protect pdf", "pdf security", "add password to pdf",
				"pdf protection", "make pdf read only", "pdf locker", "set pdf password",
				"pdf password protection", "secure document", "encrypt pdf file", "pdf restricted",
				"pdf access control", "password", "protect", "pdf encryption password",
				"restrict pdf access", "pdf cannot copy", "pdf cannot edit", "pdf read only",
				"pdf permissions", "owner password pdf", "user password pdf",
				"secure pdf with password", "lock pdf document", "lock pdf file",
				"protect pdf document", "make pdf private", "password protect document",
				"pdf prevent editing", "pdf prevent printing", "pdf prevent copying",
				"confidential pdf", "private pdf", "pdf 256 bit encryption",
			},
			Description: "Lock PDF with password",
			Tip:         "Use a strong password you will remember. The encrypted PDF cannot be opened without it.",
		},
		{
			ID: "unlockPdf", Label: "UNLOCK PDF", Category: CategoryPDF,
			Keywords: []string{
				"unlock pdf", "pdf unlock", "remove password from pdf", "pdf decryption", "decrypt pdf",
				"open locked pdf", "pdf password remover", "remove pdf protection", "unprotect pdf",
				"remove pdf security", "pdf unlocker", "decrypt pdf file", "remove protection", "forgot password",
				"remove password protection", "remove encryption from pdf",
				"locked pdf opener", "open encrypted pdf", "remove pdf restrictions",
				"unlock secured pdf", "unlock protected pdf", "decrypt protected pdf",
				"remove pdf editing restrictions", "remove pdf print restrictions",
			},
			Description: "Unlock PDF password",
			Tip:         "You need the original password to unlock the PDF.",
		},
		{
			ID: "mergePdf", Label: "MERGE PDF", Category: CategoryPDF,
			Keywords: []string{
				"merge pdf", "pdf merge", "combine pdf", "join pdf", "pdf combiner", "merge pdf files",
				"concatenate pdf", "pdf join", "merge multiple pdf",
				"combine pdf files", "pdf merger", "unite pdf", "join multiple pdfs",
				"merge documents into pdf", "combine pdf documents", "combine", "join",
				"pdf joiner", "pdf combine", "combine multiple pdfs",
				"merge two pdfs", "merge pdf documents", "join pdf files", "pdf concatenation",
				"batch pdf merge", "unite pdf files", "connect pdf files", "link pdf files",
				"add pdf to pdf", "insert pdf into pdf", "append pdf to pdf",
				"combine pdf in order", "reorder pdf merge",
			},
			Description: "Merge PDF files",
			Tip:         "Upload multiple PDF files and they will be combined in the order you select them.",
		},
		{
			ID: "splitPdf", Label: "SPLIT PDF", Category: CategoryPDF,
			Keywords: []string{
				"split pdf", "pdf split", "extract pdf pages", "pdf page extraction", "separate pdf",
				"pdf divide", "pdf splitter", "pdf extract", "split pdf into pages",
				"break pdf", "cut pdf", "pdf division", "separate pages from pdf", "extract pages from pdf",
				"divide pdf into multiple files", "extract", "separate",
				"pdf page splitter", "extract page from pdf", "get pages from pdf", "pull pages from pdf",
				"remove pages from pdf", "delete pages from pdf",
				"extract specific pages", "pdf partition", "pdf segment", "split pdf by size",
			},
			Description: "Split PDF pages",
			Tip:         "Enter page ranges like \"1-3,4,5-7\" to extract specific pages from your PDF.",
		},

		// Image operations
		{
			ID: "convertImages", Label: "CONVERT IMAGES", Category: CategoryImage,
			Keywords: []string{
				"convert image", "image converter", "image format conversion", "batch image converter",
				"convert between formats", "image to image", "change image format", "image file converter",
				"jpg to png", "png to jpg", "webp converter", "image type conversion", "photo format change",
				"convert format", "change format", "batch convert",
			},
			Description: "Convert image formats",
			Tip:         "Convert images between formats. Supports JPG, PNG, WEBP, and BMP formats.",
		},
		{
			ID: "resizeImage", Label: "RESIZE IMAGE", Category: CategoryImage,
			Keywords: []string{
				"resize image", "image resize", "resize pictures", "image resizer", "resize photos",
				"scale image", "image scaling", "change image size", "reduce image size",
				"increase image size", "image dimensions", "compress image size", "shrink image",
				"enlarge image", "adjust image resolution", "resize", "scale", "dimensions", "size",
			},
			Description: "Resize images",
			Tip:         "Reduce file size by resizing. Optionally maintain aspect ratio to prevent distortion.",
		},
		{
			ID: "jpgToPng", Label: "JPG TO PNG", Category: CategoryImage,
			Keywords: []string{
				"jpg to png", "jpeg to png", "convert jpg to png", "jpg png converter",
				"change jpg to png", "jpg file to png", "convert jpeg to png", "jpg image to png",
			},
			Description: "Convert JPG to PNG",
			Tip:         "Good for images that need transparency.",
		},
		{
			ID: "jpgToWebp", Label: "JPG TO WEBP", Category: CategoryImage,
			Keywords: []string{
				"jpg to webp", "jpeg to webp", "convert jpg to webp", "jpg webp converter",
				"optimize jpg for web", "compress jpg to webp", "jpg image to webp",
			},
			Description: "Convert JPG to WEBP",
			Tip:         "Creates smaller files with similar quality. Great for web use.",
		},
		{
			ID: "jpgToBmp", Label: "JPG TO BMP", Category: CategoryImage,
			Keywords:    []string{"jpg to bmp", "jpeg to bmp", "convert jpg to bmp", "jpg bmp converter", "jpg to bitmap", "jpeg to bitmap"},
			Description: "Convert JPG to BMP",
			Tip:         "Creates uncompressed bitmap files.",
		},
		{
			ID: "pngToJpg", Label: "PNG TO JPG", Category: CategoryImage,
			Keywords: []string{
				"png to jpg", "png to jpeg", "convert png to jpg", "png jpg converter",
				"change png to jpg", "png file to jpg", "convert png image to jpg",
			},
			Description: "Convert PNG to JPG",
			Tip:         "Creates smaller files. Transparency will become white background.",
		},
		{
			ID: "pngToWebp", Label: "PNG TO WEBP", Category: CategoryImage,
			Keywords:    []string{"png to webp", "convert png to webp", "png webp converter", "optimize png for web", "compress png to webp"},
			Description: "Convert PNG to WEBP",
			Tip:         "Smaller file sizes with full transparency support.",
		},
		{
			ID: "pngToBmp", Label: "PNG TO BMP", Category: CategoryImage,
			Keywords:    []string{"png to bmp", "convert png to bmp", "png bmp converter", "png to bitmap", "change png to bmp"},
			Description: "Convert PNG to BMP",
			Tip:         "Creates uncompressed bitmap files for maximum compatibility.",
		},
		{
			ID: "webpToJpg", Label: "WEBP TO JPG", Category: CategoryImage,
			Keywords:    []string{"webp to jpg", "webp to jpeg", "convert webp to jpg", "webp jpg converter", "webp converter", "change webp to jpg"},
			Description: "Convert WEBP to JPG",
			Tip:         "Convert modern WEBP images to standard JPEG format.",
		},
		{
			ID: "webpToPng", Label: "WEBP TO PNG", Category: CategoryImage,
			Keywords:    []string{"webp to png", "convert webp to png", "webp png converter", "change webp to png", "webp image to png"},
			Description: "Convert WEBP to PNG",
			Tip:         "Preserves transparency.",
		},
		{
			ID: "webpToBmp", Label: "WEBP TO BMP", Category: CategoryImage,
			Keywords:    []string{"webp to bmp", "convert webp to bmp", "webp bmp converter", "webp to bitmap", "change webp to bmp"},
			Description: "Convert WEBP to BMP",
			Tip:         "Creates uncompressed bitmap files from WEBP images.",
		},
		{
			ID: "bmpToJpg", Label: "BMP TO JPG", Category: CategoryImage,
			Keywords:    []string{"bmp to jpg", "bmp to jpeg", "convert bmp to jpg", "bmp jpg converter", "bitmap to jpg", "convert bitmap to jpeg"},
			Description: "Convert BMP to JPG",
			Tip:         "Significantly reduces file size.",
		},
		{
			ID: "bmpToPng", Label: "BMP TO PNG", Category: CategoryImage,
			Keywords:    []string{"bmp to png", "convert bmp to png", "bmp png converter", "bitmap to png"},
			Description: "Convert BMP to PNG",
			Tip:         "Creates compressed files with lossless quality.",
		},
		{
			ID: "bmpToWebp", Label: "BMP TO WEBP", Category: CategoryImage,
			Keywords:    []string{"bmp to webp", "convert bmp to webp", "bmp webp converter", "bitmap to webp", "optimize bmp for web"},
			Description: "Convert BMP to WEBP",
			Tip:         "Creates smaller files for web use.",
		},

		// OCR
		{
			ID: "ocrImage", Label: "OCR IMAGE", Category: CategoryOCR,
			Keywords: []string{
				"ocr", "optical character recognition", "extract text from image", "image to text",
				"scanned document to text", "scan to text", "image text extraction",
				"photo to text", "screenshot text extraction", "handwriting to text",
				"extract words from image", "read text from picture", "image to editable text",
				"convert image to text", "ocr scan", "ocr photo", "ocr handwriting",
				"text recognition", "document scanner", "pdf ocr", "scan", "extract text",
			},
			Description: "OCR - Extract text from images",
			Tip:         "Works best with clear, high-contrast images.",
		},
		{
			ID: "detectLanguage", Label: "DETECT LANGUAGE", Category: CategoryOCR,
			Keywords: []string{
				"detect language", "language detection", "identify language", "language recognizer",
				"what language is this", "detect text language", "language identifier",
				"recognize text language", "language analyzer", "auto detect language",
				"language identification", "identify",
			},
			Description: "Detect language in image",
			Tip:         "Automatically identifies the language of text in your image for OCR processing.",
		},

		// Archive
		{
			ID: "zip", Label: "ZIP FOLDER", Category: CategoryArchive,
			Keywords: []string{
				"zip", "compress", "zip folder", "create zip", "zip files", "archive",
				"compress files", "zip archive", "make zip", "zip compression",
				"zip files together", "bundle files", "compress folder",
				"create archive", "make archive", "pack files", "archive files", "bundle",
			},
			Description: "Create ZIP archive",
			Tip:         "Select multiple files to compress into a single ZIP archive.",
		},
		{
			ID: "unZip", Label: "UNZIP FOLDER", Category: CategoryArchive,
			Keywords: []string{
				"unzip", "extract", "unzip folder", "extract zip", "open zip", "unarchive",
				"extract zip files", "unzip archive", "decompress", "uncompress",
				"extract files from zip", "extract compressed files", "open compressed folder", "unpack zip",
				"open archive",
			},
			Description: "Extract ZIP archive",
			Tip:         "Upload a ZIP file to extract all its contents.",
		},

		// Search
		{
			ID: "searchPdf", Label: "SEARCH IN PDF", Category: CategorySearch,
			Keywords: []string{
				"search in pdf", "pdf search", "find in pdf", "pdf text search", "search pdf content",
				"pdf finder", "pdf text finder", "search within pdf", "pdf grep",
				"find words in pdf", "search document", "lookup pdf text", "pdf content lookup",
				"search inside pdf", "pdf keyword search", "pdf full text search", "find", "lookup",
				"pdf find and highlight", "find text in scanned pdf", "pdf ocr search",
				"search within document", "find word occurrence", "pdf count occurrences",
			},
			Description: "Search text in PDF",
			Tip:         "Search for specific words or phrases within your PDF document.",
		},

		// Watermark
		{
			ID: "watermark", Label: "WATERMARK PDF", Category: CategoryWatermark,
			Keywords: []string{
				"watermark pdf", "pdf watermark", "add watermark to pdf", "pdf stamp", "watermark text pdf",
				"image watermark pdf", "logo watermark pdf", "pdf branding", "add stamp to pdf",
				"pdf annotation", "insert watermark", "pdf signature",
				"text or image watermark", "brand pdf", "pdf copyright mark", "stamp", "brand",
			},
			Description: "Add watermark to PDF",
			Tip:         "Add text or image watermarks to brand your PDFs or mark them as confidential.",
		},
	}
}
