package content

// Source strings for the documentation and examples tabs. They are shown
// verbatim and copied to the clipboard as-is.
const (
	quickStartCode = `import DocumentReader, { readDocument } from "doc-extract";

// Simple usage
const content = await readDocument("./path/to/document.pdf");
console.log(content.text);
console.log(content.metadata);

// Using the class for more control
const reader = new DocumentReader({ debug: true });
const content = await reader.readDocument("./path/to/document.docx");`

	bufferUsageCode = `import { DocumentReader } from "doc-extract";
import fs from "fs";

const reader = new DocumentReader();
const buffer = fs.readFileSync("./document.pdf");
const content = await reader.readDocumentFromBuffer(
  buffer, 
  "document.pdf"
);

console.log(content.text);`

	batchProcessingCode = `const reader = new DocumentReader();

// Process multiple documents
const contents = await reader.readMultipleDocuments([
  "./doc1.pdf",
  "./doc2.docx", 
  "./doc3.pptx"
]);

contents.forEach((content, index) => {
  console.log(` + "`" + `Document ${index + 1}:` + "`" + `);
  console.log(` + "`" + `Words: ${content.metadata?.words}` + "`" + `);
});`

	errorHandlingCode = `import { DocumentReaderError } from "doc-extract";

try {
  const content = await readDocument("./document.pdf");
  console.log(content.text);
} catch (error) {
  if (error instanceof DocumentReaderError) {
    console.log("Error code:", error.code);
    console.log("Error message:", error.message);
  }
}`

	returnTypesCode = `interface DocumentContent {
  text: string;
  metadata?: {
    pages?: number;
    words?: number;
    characters?: number;
    fileSize?: number;
    fileName?: string;
  };
}`

	expressExampleCode = `import express from "express";
import multer from "multer";
import { DocumentReader } from "doc-extract";

const app = express();
const upload = multer();
const reader = new DocumentReader();

app.post("/upload", upload.single("document"), async (req, res) => {
  try {
    if (!req.file) {
      return res.status(400).json({ error: "No file uploaded" });
    }

    const content = await reader.readDocumentFromBuffer(
      req.file.buffer,
      req.file.originalname,
      req.file.mimetype
    );

    res.json({
      text: content.text,
      metadata: content.metadata,
    });
  } catch (error) {
    res.status(500).json({ error: error.message });
  }
});

app.listen(3000, () => {
  console.log("Server running on port 3000");
});`

	batchExampleCode = `import { DocumentReader } from "doc-extract";
import { promises as fs } from "fs";
import path from "path";

async function processDocumentsInDirectory(dirPath: string) {
  const reader = new DocumentReader({ debug: true });

  const files = await fs.readdir(dirPath);
  const documentPaths = files
    .filter((file) => reader.isFormatSupportedByName(file))
    .map((file) => path.join(dirPath, file));

  const results = await reader.readMultipleDocuments(documentPaths);

  results.forEach((content, index) => {
    console.log(` + "`" + `Document ${documentPaths[index]}:` + "`" + `);
    console.log(` + "`" + `Words: ${content.metadata?.words}` + "`" + `);
    console.log(` + "`" + `Characters: ${content.metadata?.characters}` + "`" + `);
    console.log("---");
  });
}

// Usage
processDocumentsInDirectory("./documents")
  .then(() => console.log("Processing complete"))
  .catch(console.error);`

	searchExampleCode = `import { DocumentReader } from "doc-extract";

async function searchInDocument(filePath: string, searchTerm: string) {
  const reader = new DocumentReader();
  const content = await reader.readDocument(filePath);

  const lines = content.text.split("\n");
  const matchingLines = lines
    .map((line, index) => ({ line, lineNumber: index + 1 }))
    .filter(({ line }) =>
      line.toLowerCase().includes(searchTerm.toLowerCase())
    );

  return {
    totalMatches: matchingLines.length,
    matches: matchingLines,
    metadata: content.metadata,
  };
}

// Usage
searchInDocument("./document.pdf", "important")
  .then((results) => {
    console.log(` + "`" + `Found ${results.totalMatches} matches` + "`" + `);
    results.matches.forEach(({ line, lineNumber }) => {
      console.log(` + "`" + `Line ${lineNumber}: ${line}` + "`" + `);
    });
  })
  .catch(console.error);`
)
