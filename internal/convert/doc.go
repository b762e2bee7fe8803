package convert

// Package convert turns an ordered list of chosen files into one PDF: images
// are flattened onto white and imported one page each, PDFs are merged in
// order. Both paths are built on github.com/pdfcpu/pdfcpu and write through a
// temporary file so a failed run leaves nothing behind.
