package document

import (
	"bytes"
	"testing"
)

func sample() *Value {
	return NewObject(
		Member{Key: "a", Value: NewArray(NewNumber("1"), NewObject(Member{Key: "b", Value: NewNull()}))},
		Member{Key: "c", Value: NewObject()},
		Member{Key: "d", Value: NewArray()},
	)
}

func TestMarshalIndented(t *testing.T) {
	want := "{\n" +
		"    \"a\": [\n" +
		"        1,\n" +
		"        {\n" +
		"            \"b\": null\n" +
		"        }\n" +
		"    ],\n" +
		"    \"c\": {},\n" +
		"    \"d\": []\n" +
		"}"

	got := string(Marshal(sample(), DefaultEncodeOptions))
	if got != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalLayouts(t *testing.T) {
	tests := []struct {
		name string
		opts EncodeOptions
		want string
	}{
		{
			name: "zero indent keeps newlines",
			opts: EncodeOptions{Indent: 0},
			want: "{\n\"a\": [\n1,\n{\n\"b\": null\n}\n],\n\"c\": {},\n\"d\": []\n}",
		},
		{
			name: "compact",
			opts: EncodeOptions{Indent: -1},
			want: `{"a": [1, {"b": null}], "c": {}, "d": []}`,
		},
		{
			name: "two spaces",
			opts: EncodeOptions{Indent: 2},
			want: "{\n  \"a\": [\n    1,\n    {\n      \"b\": null\n    }\n  ],\n  \"c\": {},\n  \"d\": []\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Marshal(sample(), tt.opts)); got != tt.want {
				t.Errorf("Marshal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalScalars(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"nil", nil, "null"},
		{"true", NewBool(true), "true"},
		{"false", NewBool(false), "false"},
		{"number literal", NewNumber("1.50"), "1.50"},
		{"empty number", &Value{Kind: KindNumber}, "0"},
		{"plain string", NewString("/proj/a/b"), `"/proj/a/b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Marshal(tt.v, DefaultEncodeOptions)); got != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMarshalStringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		ascii bool
		want  string
	}{
		{"quote and backslash", `a"b\c`, true, `"a\"b\\c"`},
		{"short escapes", "\n\r\t\b\f", true, `"\n\r\t\b\f"`},
		{"control", "x\x01", true, `"x\u0001"`},
		{"delete ascii", "x\x7f", true, `"x\u007f"`},
		{"delete utf8", "x\x7f", false, "\"x\x7f\""},
		{"latin ascii", "é", true, `"\u00e9"`},
		{"latin utf8", "é", false, `"é"`},
		{"astral ascii", "😀", true, `"\ud83d\ude00"`},
		{"slash untouched", "a/b", true, `"a/b"`},
		{"html untouched", "<&>", true, `"<&>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Marshal(NewString(tt.in), EncodeOptions{Indent: 4, ASCII: tt.ascii}))
			if got != tt.want {
				t.Errorf("Marshal(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	in := []byte("{\n    \"path\": \"/proj/a\",\n    \"n\": 1.50,\n    \"list\": [\n        true,\n        \"\\u00fc\"\n    ]\n}")

	v, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	out := Marshal(v, DefaultEncodeOptions)
	if !bytes.Equal(out, in) {
		t.Errorf("round trip =\n%s\nwant\n%s", out, in)
	}
}

func TestEncodeWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, NewArray(NewString("x")), EncodeOptions{Indent: -1}); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if buf.String() != `["x"]` {
		t.Errorf("Encode() = %s, want %s", buf.String(), `["x"]`)
	}
}
