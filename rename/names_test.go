package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExt(t *testing.T) {
	var tests = []struct {
		name string
		root string
		ext  string
	}{
		{"notes", "notes", ""},
		{"notes.txt", "notes", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{".bashrc", ".bashrc", ""},
		{"..hidden", "..hidden", ""},
		{".bashrc.bak", ".bashrc", ".bak"},
		{"trailing.", "trailing", "."},
		{"", "", ""},
	}

	for _, test := range tests {
		root, ext := SplitExt(test.name)

		assert.Equal(t, test.root, root, "root of %q", test.name)
		assert.Equal(t, test.ext, ext, "extension of %q", test.name)
	}
}

func TestSnakeCase(t *testing.T) {
	var tests = []struct {
		input    string
		expected string
	}{
		{"MyFile", "my_file"},
		{"My File-Test", "my_file_test"},
		{"IMG   001", "img_001"},
		{"version2Final", "version2_final"},
		{"HTTPServer", "httpserver"},
		{"__already__snake__", "already_snake"},
		{"a.b-c d", "a_b_c_d"},
		{"-", ""},
		{"Café Menu", "café_menu"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, SnakeCase(test.input), "SnakeCase(%q)", test.input)
	}
}

func TestNormalize(t *testing.T) {
	var tests = []struct {
		input    string
		expected string
	}{
		{"My File-Test.txt", "my_file_test.txt"},
		{"MyFile", "my_file"},
		{".bashrc", ".bashrc"},
		{"IMG   001.JPG", "img_001.jpg"},
		{"Report.FinalDraft.PDF", "report_final_draft.pdf"},
		{"photo.JpG", "photo.jpg"},
		{"Data.MyExt", "data.myext"},
		{".Bash Profile.BAK", ".bash_profile.bak"},
		{"..Hidden.TXT", ".hidden.txt"},
		{"trailing.", "trailing."},
		{"-.txt", ".txt"},
		{"already_fine.md", "already_fine.md"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Normalize(test.input), "Normalize(%q)", test.input)
	}
}

func TestNormalizeConverges(t *testing.T) {
	inputs := []string{
		"My File-Test.txt",
		"MyFile",
		".bashrc",
		".bashrc.bak",
		"IMG   001.JPG",
		"a..b..C",
		"...",
		"-.txt",
		"x-Y z.Tar.GZ",
		"ALLCAPS",
		"camelCaseName.jsonLD",
		"trailing.",
		" spaced out .Md",
	}

	for _, input := range inputs {
		once := Normalize(input)

		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent on %q", once)
	}
}

func TestAppendExt(t *testing.T) {
	assert.Equal(t, "notes.ipynb", AppendExt("notes", "ipynb"))
	assert.Equal(t, "notes.ipynb", AppendExt("notes.txt", "ipynb"), "the previous extension is dropped")
	assert.Equal(t, "archive.tar.ipynb", AppendExt("archive.tar.gz", "ipynb"))
	assert.Equal(t, ".bashrc.ipynb", AppendExt(".bashrc", "ipynb"))
}

func TestHasExt(t *testing.T) {
	assert.True(t, HasExt("lab.ipynb", "ipynb"))
	assert.True(t, HasExt("LAB.IPYNB", "ipynb"))
	assert.False(t, HasExt("ipynb", "ipynb"))
	assert.False(t, HasExt("lab.ipynb.txt", "ipynb"))
	assert.False(t, HasExt("labipynb", "ipynb"))
}
