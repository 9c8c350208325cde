package internal

import (
	"bytes"
	"cpay/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/url"
	"strings"
	"testing"
)

func TestNewForm_WithoutChecksum(t *testing.T) {
	form := NewForm(entity.FieldMapOf("A", "1"), nil, false)

	assert.Equal(t, cpayTestUrl, form.Action)
	assert.Equal(t, []entity.Field{{Name: "A", Value: "1"}}, form.Fields)
}

func TestNewForm_ChecksumFieldsLast(t *testing.T) {
	result := &entity.ChecksumResult{Header: "01A,001", CheckSum: "abc"}
	form := NewForm(entity.FieldMapOf("A", "1"), result, true)

	assert.Equal(t, cpayProdUrl, form.Action)
	assert.Equal(t, []entity.Field{
		{Name: "A", Value: "1"},
		{Name: FieldCheckSum, Value: "abc"},
		{Name: FieldCheckSumHeader, Value: "01A,001"},
	}, form.Fields)
}

func TestForm_EncodeKeepsOrder(t *testing.T) {
	form := NewForm(entity.FieldMapOf("Zip", "1000", "Details1", "a b&c", "City", "Скопје"), nil, false)

	body := form.Encode()

	assert.True(t, strings.HasPrefix(body, "Zip=1000&Details1=a+b%26c&City="))
	values, err := url.ParseQuery(body)
	require.NoError(t, err)
	assert.Equal(t, "a b&c", values.Get("Details1"))
	assert.Equal(t, "Скопје", values.Get("City"))
}

func TestForm_HasChecksum(t *testing.T) {
	assert.False(t, NewForm(entity.FieldMapOf("A", "1"), nil, false).HasChecksum())
	assert.True(t, NewForm(entity.FieldMapOf("A", "1"), &entity.ChecksumResult{CheckSum: "abc"}, false).HasChecksum())
}

func TestRenderHTML(t *testing.T) {
	result := &entity.ChecksumResult{Header: "01Details1,005", CheckSum: "abc"}
	form := NewForm(entity.FieldMapOf("Details1", `<"x">`), result, false)

	var page bytes.Buffer
	require.NoError(t, RenderHTML(&page, form))

	html := page.String()
	assert.Contains(t, html, `name="C-Pay Form"`)
	assert.Contains(t, html, `method="POST"`)
	assert.Contains(t, html, `enctype="application/x-www-form-urlencoded"`)
	assert.Contains(t, html, `name="CheckSum" value="abc"`)
	assert.NotContains(t, html, `<"x">`)
	assert.Less(t, strings.Index(html, `name="Details1"`), strings.Index(html, `name="CheckSum"`))
}
