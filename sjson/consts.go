package sjson

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	ObjectOpen  = '{'
	ObjectClose = '}'
	ArrayOpen   = '['
	ArrayClose  = ']'
	Quote       = '"'
	Backslash   = '\\'
	Comma       = ','

	// AssignSJSON separates a key from its value in SJSON output.
	AssignSJSON = " = "

	// AssignJSON separates a key from its value in JSON output.
	AssignJSON = ": "

	// TripleQuote delimits a literal string copied without escape processing.
	TripleQuote = `"""`

	// PrivatePrefix marks fields skipped by WriteOptions.SkipPrivate.
	PrivatePrefix = "::"

	// ============================================================================
	// Comments
	// ============================================================================

	LineComment       = "//"
	BlockCommentOpen  = "/*"
	BlockCommentClose = "*/"

	// ============================================================================
	// Keywords
	// ============================================================================

	KeywordTrue  = "true"
	KeywordFalse = "false"
	KeywordNull  = "null"

	// ============================================================================
	// Number Formatting
	// ============================================================================

	// HexPrefix introduces a raw value literal such as 0x00000000deadbeef.
	HexPrefix = "0x"

	// DefaultIndent is the indentation unit of the writer.
	DefaultIndent = "\t"

	// initialOutputSize is the starting capacity of the writer buffer.
	initialOutputSize = 4 * 1024
)

var (
	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF16BEBOM is the byte order mark for UTF-16 big-endian.
	UTF16BEBOM = []byte{0xFE, 0xFF}
)
