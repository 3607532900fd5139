package content

// Section anchors used by the header navigation.
const (
	AnchorFeatures = "features"
	AnchorDocs     = "docs"
	AnchorExamples = "examples"
)

// Default tab selections.
const (
	DefaultDocTab  = "installation"
	DefaultExample = "express"
)

// Formats lists the document formats the library reads, in display order.
var Formats = []string{"PDF", "DOCX", "DOC", "PPT", "PPTX", "TXT"}

// Hero returns the banner copy for the given title, release and npm package.
func Hero(title, version, pkg string) HeroContent {
	return HeroContent{
		Badge: version + " - Latest Release",
		Title: title,
		Tagline: "A powerful Node.js library for reading and extracting text from " +
			"various document formats including PDF, DOCX, DOC, PPT, PPTX, and TXT files.",
		InstallCommand: "npm install " + pkg,
		Formats:        append([]string(nil), Formats...),
	}
}

// Nav returns the header navigation links.
func Nav() []Link {
	return []Link{
		{Label: "Features", Href: "#" + AnchorFeatures},
		{Label: "Documentation", Href: "#" + AnchorDocs},
		{Label: "Examples", Href: "#" + AnchorExamples},
	}
}

// Features returns the six feature cards.
func Features() []Feature {
	return []Feature{
		{
			Icon:        IconFileText,
			Title:       "Multiple Format Support",
			Description: "Extract text from PDF, DOCX, DOC, PPT, PPTX, and TXT files with a unified API.",
			Badge:       "6 Formats",
		},
		{
			Icon:        IconDatabase,
			Title:       "Rich Metadata",
			Description: "Get comprehensive document statistics including word count, character count, and page numbers.",
			Badge:       "Detailed Stats",
		},
		{
			Icon:        IconLayers,
			Title:       "Buffer Support",
			Description: "Read documents directly from memory buffers without writing to disk.",
			Badge:       "Memory Efficient",
		},
		{
			Icon:        IconCode,
			Title:       "TypeScript Ready",
			Description: "Full TypeScript support with comprehensive type definitions and IntelliSense.",
			Badge:       "Type Safe",
		},
		{
			Icon:        IconZap,
			Title:       "Promise-based API",
			Description: "Modern async/await API design for seamless integration with your applications.",
			Badge:       "Async/Await",
		},
		{
			Icon:        IconShield,
			Title:       "Error Handling",
			Description: "Comprehensive error handling with custom error types and detailed error messages.",
			Badge:       "Robust",
		},
	}
}

// Stats returns the figures shown below the feature grid.
func Stats() []Stat {
	return []Stat{
		{Value: "6+", Label: "Supported Formats"},
		{Value: "100%", Label: "TypeScript Coverage"},
		{Value: "0", Label: "Dependencies"},
		{Value: "MIT", Label: "Open Source License"},
	}
}

// DocTabs returns the documentation tabs in display order.
func DocTabs(pkg string) []DocTab {
	return []DocTab{
		{
			ID:             "installation",
			Label:          "Installation",
			InstallCommand: "npm install " + pkg,
			Platforms: []Platform{
				{Name: "Ubuntu/Debian", Accent: "blue", Command: "sudo apt-get install antiword unrtf poppler-utils tesseract-ocr"},
				{Name: "macOS", Accent: "green", Command: "brew install antiword unrtf poppler tesseract"},
				{Name: "Windows", Accent: "purple", Command: "choco install poppler tesseract"},
			},
		},
		{
			ID:    "quickstart",
			Label: "Quick Start",
			Samples: []CodeSample{
				{Title: "Basic Usage", Language: "typescript", Code: quickStartCode},
				{Title: "Buffer Support", Language: "typescript", Code: bufferUsageCode},
			},
		},
		{
			ID:          "api",
			Label:       "API Reference",
			Constructor: "new DocumentReader(options?: { debug?: boolean })",
			MethodGroups: []APIMethodGroup{
				{
					Title: "Main Methods",
					Methods: []string{
						"readDocument(filePath: string)",
						"readDocumentFromBuffer(buffer, fileName)",
						"readMultipleDocuments(filePaths[])",
						"readMultipleFromBuffers(buffers[])",
					},
				},
				{
					Title: "Format-Specific",
					Methods: []string{
						"readPdf(filePath)",
						"readDocx(filePath)",
						"readPowerPoint(filePath)",
						"isFormatSupported(filePath)",
					},
				},
			},
			Samples: []CodeSample{
				{Title: "Return Types", Language: "typescript", Code: returnTypesCode},
			},
		},
		{
			ID:    "examples",
			Label: "Examples",
			Samples: []CodeSample{
				{Title: "Batch Processing", Language: "typescript", Code: batchProcessingCode},
				{Title: "Error Handling", Language: "typescript", Code: errorHandlingCode},
			},
		},
	}
}

// Examples returns the real-world example tabs in display order.
func Examples() []Example {
	return []Example{
		{
			ID:          "express",
			Title:       "Express.js Integration",
			Description: "Handle file uploads and extract text in an Express.js application",
			Icon:        IconServer,
			Tags:        []string{"Express", "Multer", "File Upload"},
			Language:    "typescript",
			Code:        expressExampleCode,
		},
		{
			ID:          "batch",
			Title:       "Batch Processing",
			Description: "Process multiple documents in a directory efficiently",
			Icon:        IconLayers,
			Tags:        []string{"Batch", "Directory", "Processing"},
			Language:    "typescript",
			Code:        batchExampleCode,
		},
		{
			ID:          "search",
			Title:       "Document Search",
			Description: "Search for specific terms within documents",
			Icon:        IconSearch,
			Tags:        []string{"Search", "Text Analysis", "Filtering"},
			Language:    "typescript",
			Code:        searchExampleCode,
		},
	}
}

// ExampleByID looks up an example tab. ok is false for unknown ids.
func ExampleByID(id string) (Example, bool) {
	for _, ex := range Examples() {
		if ex.ID == id {
			return ex, true
		}
	}
	return Example{}, false
}

// Footer returns the footer copy. Social links are filled in by the caller
// from configuration.
func Footer(title string) FooterContent {
	return FooterContent{
		Title: title,
		About: "Powerful document processing and text extraction library for developers.",
		QuickLinks: []Link{
			{Label: "Documentation", Href: "/docs"},
			{Label: "Examples", Href: "/examples"},
		},
		Owner: title,
	}
}
