package imser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stream(tokens ...Token) TokenStream {
	return NewTokenStream(tokens)
}

func TestTokenFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter TokenFilter
		in     TokenStream
		want   TokenStream
	}{
		{
			name:   "lowercase",
			filter: NewLowercaseFilter(),
			in:     stream(NewToken("Hoge", At(0, 0)), NewToken("fuGA", At(5, 1)), NewToken("PIYO", At(10, 2))),
			want:   stream(Token{Term: "hoge", Length: 4}, Token{Term: "fuga", Offset: 5, Length: 4, Position: 1}, Token{Term: "piyo", Offset: 10, Length: 4, Position: 2}),
		},
		{
			name:   "stop words keep later positions",
			filter: NewStopWordFilter([]string{"the", "a"}),
			in:     stream(NewToken("the", At(0, 0)), NewToken("dog", At(4, 1)), NewToken("a", At(8, 2)), NewToken("cat", At(10, 3))),
			want:   stream(NewToken("dog", At(4, 1)), NewToken("cat", At(10, 3))),
		},
		{
			name:   "stop words never drop punctuation",
			filter: NewStopWordFilter([]string{"."}),
			in:     stream(NewToken("dog", At(0, 0)), NewPunctToken(".", At(3, 1))),
			want:   stream(NewToken("dog", At(0, 0)), NewPunctToken(".", At(3, 1))),
		},
		{
			name:   "stemmer",
			filter: NewStemmerFilter(),
			in:     stream(NewToken("pens", At(0, 0)), NewToken("came", At(5, 1)), NewToken("running", At(10, 2))),
			want:   stream(Token{Term: "pen", Length: 4}, Token{Term: "came", Offset: 5, Length: 4, Position: 1}, Token{Term: "run", Offset: 10, Length: 7, Position: 2}),
		},
		{
			name:   "stemmer leaves punctuation",
			filter: NewStemmerFilter(),
			in:     stream(NewPunctToken("'s", At(0, 0))),
			want:   stream(NewPunctToken("'s", At(0, 0))),
		},
		{
			name:   "romaji",
			filter: NewRomajiReadingformFilter(),
			in:     stream(NewToken("おっ早う", SetKana("オハヨウ")), NewToken("チョット", SetKana("チョット"), SetPosition(1))),
			want:   stream(Token{Term: "ohayo", Kana: "オハヨウ", Length: 12}, Token{Term: "chotto", Kana: "チョット", Length: 12, Position: 1}),
		},
		{
			name:   "romaji without reading",
			filter: NewRomajiReadingformFilter(),
			in:     stream(NewToken("dog")),
			want:   stream(NewToken("dog")),
		},
		{
			name:   "kana",
			filter: NewKanaReadingformFilter(),
			in:     stream(NewToken("白馬", SetKana("ハクバ")), NewPunctToken("、", SetKana("、"), SetPosition(1))),
			want:   stream(Token{Term: "ハクバ", Kana: "ハクバ", Length: 6}, NewPunctToken("、", SetKana("、"), SetPosition(1))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.filter.Filter(tt.in)); diff != "" {
				t.Errorf("Diff: (-want +got)\n%s", diff)
			}
		})
	}
}

func TestTokenFilters_DoNotModifyInput(t *testing.T) {
	in := stream(NewToken("白馬", SetKana("ハクバ")), NewToken("Dogs"))
	want := stream(NewToken("白馬", SetKana("ハクバ")), NewToken("Dogs"))
	for _, f := range []TokenFilter{
		NewLowercaseFilter(),
		NewStemmerFilter(),
		NewKanaReadingformFilter(),
		NewRomajiReadingformFilter(),
	} {
		f.Filter(in)
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("input changed: (-want +got)\n%s", diff)
	}
}
