package sjson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/internal/testutil"
)

func TestWrite_DefaultLayout(t *testing.T) {
	store := mustParse(t, `{ a = 1, b = "x", c = [1 2 3] }`, DefaultParseOptions())

	got := WriteString(store.Root(), DefaultWriteOptions())
	require.Equal(t, "a = 1\nb = \"x\"\nc = [1 2 3]", got)
}

func TestWrite_NestedObjectAndArrays(t *testing.T) {
	root := testutil.NewDoc(t)
	o := root.SetObject("o")
	o.Add("x").SetNumber(1)
	list := root.SetArray("list")
	list.PushObject().Add("a").SetBool(true)
	list.PushArray().PushNumber(2)

	got := WriteString(root, DefaultWriteOptions())
	require.Equal(t, "o = {\n\tx = 1\n}\nlist = [\n\t{\n\t\ta = true\n\t}\n\t[2]\n]", got)
}

func TestWrite_WithBraces(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("k").SetString("v")
	root.SetObject("empty")

	got := WriteString(root, WriteOptions{})
	require.Equal(t, "{\n\tk = \"v\"\n\tempty = {}\n}", got)
}

func TestWrite_JSON(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("a").SetNumber(1)
	arr := root.SetArray("b")
	arr.PushNumber(1)
	arr.PushString("two")
	arr.PushNull()
	root.Add("c").SetObject("d").Add("e").SetBool(false)

	got := WriteString(root, WriteOptions{JSON: true, SkipRootBraces: true, Indent: "  "})
	require.Equal(t, "{\n  \"a\": 1,\n  \"b\": [1, \"two\", null],\n  \"c\": {\n    \"d\": {\n      \"e\": false\n    }\n  }\n}", got)
}

func TestWrite_JSONEscapedNewlineRoundTrip(t *testing.T) {
	opts := DefaultParseOptions()
	opts.StrictJSON = true
	store := mustParse(t, `{ "k": "line1\nline2" }`, opts)

	got := WriteString(store.Root(), WriteOptions{JSON: true})
	require.Equal(t, "{\n\t\"k\": \"line1\\nline2\"\n}", got)
}

func TestWrite_NaNIsNull(t *testing.T) {
	root := testutil.NewDoc(t)
	_, err := root.Set("n", math.NaN())
	require.NoError(t, err)

	require.Equal(t, "n = null", WriteString(root, DefaultWriteOptions()))
}

func TestWrite_SkipNullOnlyForFields(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("gone").SetNull()
	root.Add("undef")
	arr := root.SetArray("arr")
	arr.PushNull()
	arr.PushNumber(1)

	require.Equal(t, "arr = [null 1]", WriteString(root, DefaultWriteOptions()))

	opts := DefaultWriteOptions()
	opts.SkipNull = false
	require.Equal(t, "gone = null\narr = [null 1]", WriteString(root, opts))
}

func TestWrite_SkipPrivate(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("::cache").SetNumber(1)
	root.Add("shown").SetNumber(2)

	opts := DefaultWriteOptions()
	opts.SkipPrivate = true
	require.Equal(t, "shown = 2", WriteString(root, opts))

	opts.SkipPrivate = false
	require.Equal(t, "\"::cache\" = 1\nshown = 2", WriteString(root, opts))
}

func TestWrite_SameLinePrimitives(t *testing.T) {
	root := testutil.NewDoc(t)
	pos := root.SetObject("pos")
	pos.Add("x").SetNumber(1)
	pos.Add("y").SetNumber(2)
	mixed := root.SetObject("mixed")
	mixed.Add("a").SetNumber(1)
	mixed.SetArray("list")
	quoted := root.SetObject("quoted")
	quoted.Add("needs quotes").SetNumber(1)

	opts := DefaultWriteOptions()
	opts.SameLinePrimitives = true
	got := WriteString(root, opts)
	require.Equal(t, "pos = { x = 1 y = 2 }\nmixed = {\n\ta = 1\n\tlist = []\n}\nquoted = {\n\t\"needs quotes\" = 1\n}", got)
}

func TestWrite_TruncateNumbers(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("tiny").SetNumber(0.012345)
	root.Add("small").SetNumber(0.56789)
	root.Add("big").SetNumber(12.3456)

	opts := DefaultWriteOptions()
	opts.TruncateNumbers = true
	require.Equal(t, "tiny = 0.0123\nsmall = 0.568\nbig = 12.35", WriteString(root, opts))
}

func TestWrite_SortFields(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("b").SetNumber(2)
	root.Add("c").SetNumber(3)
	root.Add("a").SetNumber(1)

	opts := DefaultWriteOptions()
	opts.SortFields = true
	require.Equal(t, "a = 1\nb = 2\nc = 3", WriteString(root, opts))
}

func TestWrite_StringEscapes(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("s").SetString("q\"b\\n\nt\tc\x01é")

	require.Equal(t, `s = "q\"b\\n\nt\tc`+"\x01"+`é"`, WriteString(root, DefaultWriteOptions()))

	opts := DefaultWriteOptions()
	opts.EscapeUTF8 = true
	require.Equal(t, `s = "q\"b\\n\nt\tc`+"\x01"+`\xc3\xa9"`, WriteString(root, opts))

	require.Contains(t, WriteString(root, WriteOptions{JSON: true}), `"q\"b\\n\nt\tc\u0001é"`)
}

func TestWrite_ControlBytesRoundTripWithoutDecoding(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("s").SetString("ctl\x01\x7f")

	popts := DefaultParseOptions()
	popts.DecodeUnicode = false
	doc, err := Parse(Write(root, DefaultWriteOptions()), popts)
	require.NoError(t, err)
	defer doc.Close()
	require.Equal(t, "ctl\x01\x7f", doc.Root().Find("s").AsString(""))
}

func TestWrite_SpecialValues(t *testing.T) {
	root := testutil.NewDoc(t)
	root.Add("raw").SetRaw(0xdeadbeef)
	root.Add("inf").SetNumber(math.Inf(1))
	root.Add("ninf").SetNumber(math.Inf(-1))
	root.Add("empty").SetString("")

	got := WriteString(root, DefaultWriteOptions())
	require.Equal(t, "raw = 0x00000000deadbeef\ninf = 1e999\nninf = -1e999\nempty = \"\"", got)
}

func TestWrite_NullHandleAndScalarRoot(t *testing.T) {
	require.Equal(t, "null", WriteString(config.Handle{}, DefaultWriteOptions()))

	store := config.New(config.Number, config.Options{})
	defer store.Close()
	store.Root().SetNumber(3.5)
	require.Equal(t, "3.5", WriteString(store.Root(), DefaultWriteOptions()))
}

func TestRoundTrip(t *testing.T) {
	src := `
name = "sjsonkit"
version = 3
enabled = true
ratio = 0.125
handle = 0x0000000000001234
escaped = "a\"b\\c\nd\u0001"
servers = [
	{ host = "a" port = 80 }
	{ host = "b" port = 443 tags = ["x" "y"] }
]
matrix = [[1 2] [3 4] []]
nested = { deeper = { deepest = "yes" } }
`
	first := mustParse(t, src, DefaultParseOptions())

	variants := map[string]WriteOptions{
		"sjson":        DefaultWriteOptions(),
		"sjson braces": {},
		"same line":    {SameLinePrimitives: true, SkipRootBraces: true},
		"json":         {JSON: true},
		"json sorted":  {JSON: true, SortFields: true, Indent: " "},
	}
	for name, wopts := range variants {
		t.Run(name, func(t *testing.T) {
			popts := DefaultParseOptions()
			popts.StrictJSON = wopts.JSON
			text := Write(first.Root(), wopts)

			again, err := Parse(text, popts)
			require.NoError(t, err, "%s", text)
			defer again.Close()
			require.True(t, config.Equal(first.Root(), again.Root()), "%s", text)
			require.Equal(t, string(text), WriteString(again.Root(), wopts))
		})
	}
}
