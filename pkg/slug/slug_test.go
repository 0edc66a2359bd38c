package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stock-service/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sociedad Química", "sociedad-quimica"},
		{"  ACME   Tools  ", "acme-tools"},
		{"Ferretería El Ñandú", "ferreteria-el-nandu"},
		{"a--b__c", "a-b-c"},
		{"2024 Lab", "2024-lab"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, slug.Make(c.in), "slug de %q", c.in)
	}
}
