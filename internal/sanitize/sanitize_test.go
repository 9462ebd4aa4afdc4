package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNameTraversal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix traversal", "../../../etc/passwd", "passwd"},
		{"windows traversal", `..\..\windows\system32\config`, "config"},
		{"absolute path", "/etc/shadow", "shadow"},
		{"relative traversal", "./../../sensitive.txt", "sensitive.txt"},
		{"dotdot in the middle", "a/../b", "b"},
		{"trailing separator", "reports/", "reports"},
		{"trailing backslashes", `notes\\`, "notes"},
		{"mixed separators", `dir/sub\file.txt`, "file.txt"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameShellAndMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"semicolon command", "file;rm -rf /", "file_rm -rf"},
		{"command chain", "file && rm -rf ~", "file _ rm -rf"},
		{"pipe to path", "file|cat /etc/passwd", "passwd"},
		{"variable expansion", "file$USER.txt", "file_USER.txt"},
		{"script tag", "file<script>alert(1)</script>.txt", "script_.txt"},
		{"null byte", "file\x00null.txt", "file_null.txt"},
		{"newline and cr", "file\n\r.txt", "file_.txt"},
		{"colons", "file:with:colons.txt", "file_with_colons.txt"},
		{"quotes", `file"quoted".txt`, "file_quoted_.txt"},
		{"glob characters", "file*star?.txt", "file_star_.txt"},
		{"backtick wrapping a path", "file`rm -rf /`", Fallback},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameReservedDevices(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare upper", "CON", "file_CON"},
		{"lower with extension", "con.txt", "file_con.txt"},
		{"upper with extension", "CON.txt", "file_CON.txt"},
		{"printer device", "PRN.log", "file_PRN.log"},
		{"aux bare", "AUX", "file_AUX"},
		{"nul with double extension", "nul.tar.gz", "file_nul.tar.gz"},
		{"serial port lowercase", "com1", "file_com1"},
		{"parallel port mixed case", "Lpt9.doc", "file_Lpt9.doc"},
		{"exposed by leading trim", "_con.txt", "file_con.txt"},
		{"exposed by trailing trim", "CON-", "file_CON"},
		{"prefix only not reserved", "console.txt", "console.txt"},
		{"two digit port not reserved", "COM10.txt", "COM10.txt"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameEmptyAndBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", Fallback},
		{"whitespace only", "   ", Fallback},
		{"dots only", "...", Fallback},
		{"underscores only", "___", Fallback},
		{"hidden file", ".hidden_file.txt", "hidden_file.txt"},
		{"double dot prefix", "..hidden", "hidden"},
		{"trailing dot", "name.", "name"},
		{"wrapped in hyphens", "-draft-", "draft"},
		{"padded", "  padded name.txt  ", "padded name.txt"},
		{"collapsed spaces", "File   with     spaces", "File with spaces"},
		{"collapsed spaces with extension", "File with multiple    spaces.txt", "File with multiple spaces.txt"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNamePassthrough(t *testing.T) {
	inputs := []string{
		"Document_2024-01-15.pdf",
		"Meeting Notes (Jan 2024).txt",
		"Report-Final_v2.docx",
		"Invoice [March].xlsx",
		"Résumé 2024.pdf",
		"отчёт за март.txt",
		"报告 2024.pdf",
	}
	for _, input := range inputs {
		if got := Name(input); got != input {
			t.Errorf("Name(%q) = %q, want input unchanged", input, got)
		}
	}
}

func TestNameLength(t *testing.T) {
	t.Run("ascii overflow", func(t *testing.T) {
		input := strings.Repeat("A", 300) + ".txt"
		want := strings.Repeat("A", MaxNameLength)
		if got := Name(input); got != want {
			t.Errorf("Name(300 A's + .txt) = %q, want %d A's", got, MaxNameLength)
		}
	})
	t.Run("multibyte overflow cuts on rune boundary", func(t *testing.T) {
		got := Name(strings.Repeat("é", 200))
		if !utf8.ValidString(got) {
			t.Fatalf("Name produced invalid UTF-8: %q", got)
		}
		if n := utf8.RuneCountInString(got); n != MaxNameLength {
			t.Errorf("rune count = %d, want %d", n, MaxNameLength)
		}
	})
	t.Run("reserved prefix cannot overrun the cap", func(t *testing.T) {
		input := "_con." + strings.Repeat("a", 145)
		got := Name(input)
		if !strings.HasPrefix(got, "file_con.") {
			t.Fatalf("Name(%q) = %q, want file_con. prefix", input, got)
		}
		if n := utf8.RuneCountInString(got); n > MaxNameLength {
			t.Errorf("rune count = %d, want at most %d", n, MaxNameLength)
		}
	})
}

// adversarialInputs collects everything hostile or degenerate the sanitizer
// has to survive, beyond the cases with pinned outputs above.
var adversarialInputs = []string{
	"",
	"   ",
	"...",
	"../../../etc/passwd",
	`..\..\windows\system32\config`,
	"/etc/shadow",
	"file;rm -rf /",
	"file|cat /etc/passwd",
	"file && rm -rf ~",
	"file`rm -rf /`",
	"file$(rm -rf /)",
	"file$USER.txt",
	"file<script>alert(1)</script>.txt",
	"file\x00null.txt",
	"file\n\r.txt",
	"\tfile\twith\ttabs\t",
	"////",
	`\\\\`,
	"CON.txt",
	"PRN.log",
	"AUX",
	"_con.txt",
	"CON-",
	".hidden_file.txt",
	"..hidden",
	strings.Repeat("A", 300) + ".txt",
	strings.Repeat("é", 500),
	strings.Repeat("../", 100) + "x",
	"📄 report.pdf",
	"société générale.txt",
	"a/../b",
	"Document_2024-01-15.pdf",
	"Meeting Notes (Jan 2024).txt",
	"Report-Final_v2.docx",
	"File with multiple    spaces.txt",
}

func TestNameInvariants(t *testing.T) {
	for _, input := range adversarialInputs {
		got := Name(input)
		if got == "" {
			t.Errorf("Name(%q) returned empty string", input)
			continue
		}
		if strings.ContainsAny(got, `/\`) {
			t.Errorf("Name(%q) = %q contains a path separator", input, got)
		}
		for _, r := range got {
			if r < 0x20 || r == 0x7f {
				t.Errorf("Name(%q) = %q contains control character %U", input, got, r)
			}
		}
		if strings.HasPrefix(got, ".") {
			t.Errorf("Name(%q) = %q starts with a dot", input, got)
		}
		first, _ := utf8.DecodeRuneInString(got)
		last, _ := utf8.DecodeLastRuneInString(got)
		if strings.ContainsRune(boundaryCutset, first) {
			t.Errorf("Name(%q) = %q starts with boundary character %q", input, got, first)
		}
		if strings.ContainsRune(boundaryCutset, last) {
			t.Errorf("Name(%q) = %q ends with boundary character %q", input, got, last)
		}
		if utf8.RuneCountInString(got) > MaxNameLength {
			t.Errorf("Name(%q) = %q exceeds %d runes", input, got, MaxNameLength)
		}
		if isReserved(got) {
			t.Errorf("Name(%q) = %q is still a reserved device name", input, got)
		}
		if strings.Contains(got, "__") || strings.Contains(got, "  ") {
			t.Errorf("Name(%q) = %q contains an uncollapsed run", input, got)
		}
	}
}

func TestNameIdempotent(t *testing.T) {
	for _, input := range adversarialInputs {
		once := Name(input)
		if twice := Name(once); twice != once {
			t.Errorf("Name not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestExtensionOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"plain extension", "report.pdf", ".pdf"},
		{"no extension", "notes", ".txt"},
		{"double extension keeps last", "archive.tar.gz", ".gz"},
		{"dotfile", ".bashrc", ".txt"},
		{"trailing dot", "report.", ".txt"},
		{"path prefix", "/home/user/doc.md", ".md"},
		{"case preserved", "SCAN.TXT", ".TXT"},
		{"empty", "", ".txt"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtensionOrDefault(tt.original); got != tt.want {
				t.Errorf("ExtensionOrDefault(%q) = %q, want %q", tt.original, got, tt.want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		ext       string
		want      string
	}{
		{"appends extension", "Q1 Financial Summary", ".pdf", "Q1 Financial Summary.pdf"},
		{"deduplicates echoed extension", "Q1 Financial Summary.pdf", ".pdf", "Q1 Financial Summary.pdf"},
		{"deduplicates case insensitively", "Report.PDF", ".pdf", "Report.pdf"},
		{"keeps mismatched extension in the name", "summary.txt", ".pdf", "summary.txt.pdf"},
		{"sanitizes traversal", "../../../etc/passwd", ".txt", "passwd.txt"},
		{"empty suggestion", "", ".pdf", "unnamed_file.pdf"},
		{"dots only suggestion", "...", ".log", "unnamed_file.log"},
		{"extension only suggestion", ".pdf", ".pdf", "unnamed_file.pdf"},
		{"reserved name", "con", ".txt", "file_con.txt"},
		{"newline in suggestion", "Quarterly\nReport", ".pdf", "Quarterly_Report.pdf"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.candidate, tt.ext); got != tt.want {
				t.Errorf("Compose(%q, %q) = %q, want %q", tt.candidate, tt.ext, got, tt.want)
			}
		})
	}
}
