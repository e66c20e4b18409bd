package services_test

import (
	"bytes"
	"testing"

	"github.com/pr-poehali-dev/office-supply-webshop/services"
	"github.com/pr-poehali-dev/office-supply-webshop/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_CSV(t *testing.T) {
	svc := services.NewTemplateService()
	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	tbl, err := sheet.Read("template.csv", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, svc.Header(), tbl.Header)
	assert.Len(t, tbl.Rows, 8)
	assert.Equal(t, "TAPE-005", tbl.Rows[7][0])
}

func TestTemplateService_XLSX(t *testing.T) {
	svc := services.NewTemplateService()
	var buf bytes.Buffer
	require.NoError(t, svc.WriteXLSX(&buf))

	tbl, err := sheet.Read("template.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Каталог", tbl.Sheet)
	assert.Equal(t, svc.Header(), tbl.Header)
	require.Len(t, tbl.Rows, 8)
	assert.Equal(t, "290", tbl.Value(tbl.Rows[2], "Специальная цена!!!"))
}
