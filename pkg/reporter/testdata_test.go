package reporter_test

import (
	"github.com/yaklabco/docgate/pkg/document"
	"github.com/yaklabco/docgate/pkg/lint"
)

// sampleDocument has one issue of every kind plus two anchor links, one
// of which points nowhere.
const sampleDocument = "# Title\n" +
	"### Skipped\n" +
	"* star item\n" +
	"\n" +
	"```\n" +
	"package main\n" +
	"```\n" +
	"\n" +
	"See [top](#title) and [gone](#nowhere)\n"

func sampleDoc() *document.Document {
	return document.FromString("sample.md", sampleDocument)
}

func sampleReport() *lint.Report {
	return lint.Validate(sampleDoc())
}
