package gomamayo

// Token は表層形と読み(カタカナ)を持つ
type Token struct {
	Surface string
	Reading string
}

type TokenOption func(*Token)

// NewToken returns a token whose reading defaults to its surface form.
func NewToken(surface string, options ...TokenOption) Token {
	token := Token{Surface: surface, Reading: surface}
	for _, option := range options {
		option(&token)
	}
	return token
}

func SetReading(reading string) TokenOption {
	return func(t *Token) {
		t.Reading = reading
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{
		Tokens: tokens,
	}
}

func (ts *TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts *TokenStream) Surfaces() []string {
	surfaces := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		surfaces[i] = t.Surface
	}
	return surfaces
}

func (ts *TokenStream) Readings() []string {
	readings := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		readings[i] = t.Reading
	}
	return readings
}
