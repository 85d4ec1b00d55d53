package service

import (
	"testing"
	"time"
)

func TestCleanReportResponse(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "ya limpio",
			raw:  `{"fullReport":{}}`,
			want: `{"fullReport":{}}`,
		},
		{
			name: "fences de markdown",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "fence sin etiqueta",
			raw:  "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "BOM al inicio",
			raw:  "\uFEFF{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "prosa alrededor del objeto",
			raw:  "Here is your report:\n{\"a\":1}\nHope you like it!",
			want: `{"a":1}`,
		},
		{
			name: "conteo de palabras en ingles",
			raw:  `{"a":"Great text (250 words) here"}`,
			want: `{"a":"Great text  here"}`,
		},
		{
			name: "conteo de palabras en espanol",
			raw:  `{"a":"Buen texto (aprox. 300 palabras) aqui"}`,
			want: `{"a":"Buen texto  aqui"}`,
		},
		{
			name: "conteo entre corchetes",
			raw:  `{"a":"texto [200 words]"}`,
			want: `{"a":"texto "}`,
		},
		{
			name: "placeholder de fecha",
			raw:  `{"a":"Generated on [DATE] for you"}`,
			want: `{"a":"Generated on 2025-03-15 for you"}`,
		},
		{
			name: "placeholder de fecha con llaves",
			raw:  `{"a":"Generado el {{fecha}}"}`,
			want: `{"a":"Generado el 2025-03-15"}`,
		},
		{
			name: "vacio",
			raw:  "   \n  ",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cleanReportResponse(tc.raw, now)
			if got != tc.want {
				t.Errorf("cleanReportResponse(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
