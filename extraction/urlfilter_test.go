package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterURLs(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tracking URL removed, surrounding text kept",
			in:   "Подробнее: https://mc.yandex.ru/watch/123 тут",
			want: "Подробнее:  тут",
		},
		{
			name: "keep-listed URL survives tracking match",
			in:   "PDF: https://cdn1.platformaofd.ru/web/noauth/cheque/pdf?id=1",
			want: "PDF: https://cdn1.platformaofd.ru/web/noauth/cheque/pdf?id=1",
		},
		{
			name: "non-matching URL preserved verbatim",
			in:   "Сайт: https://example.com/page",
			want: "Сайт: https://example.com/page",
		},
		{
			name: "verification URL preserved",
			in:   "https://www.nalog.gov.ru/check",
			want: "https://www.nalog.gov.ru/check",
		},
		{
			name: "line without URL untouched",
			in:   "Итого: 134.50",
			want: "Итого: 134.50",
		},
		{
			name: "only first URL per line evaluated",
			in:   "https://jivosite.com/a https://besteml.com/b",
			want: " https://besteml.com/b",
		},
		{
			name: "multiline input filtered per line",
			in:   "Чек\nhttps://share.floctory.com/x\nИтого",
			want: "Чек\n\nИтого",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.filterURLs(tt.in))
		})
	}
}
