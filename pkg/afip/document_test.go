package afip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/pkg/afip"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máscaras de tipeo
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatCUITInput(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"2", "2"},
		{"20", "20"},
		{"201", "20-1"},
		{"2012345678", "20-12345678"},
		{"20123456789", "20-12345678-9"},
		{"20-12345678-9", "20-12345678-9"},
		{"20.123.456.789", "20-12345678-9"},
		{"2012345678999", "20-12345678-9"},
		{" 20 1234 5678 9 ", "20-12345678-9"},
		{"abc", ""},
	}
	for _, tc := range cases {
		got := afip.FormatCUITInput(tc.in)
		assert.Equal(t, tc.want, got, "FormatCUITInput(%q)", tc.in)
		assert.Equal(t, got, afip.FormatCUITInput(got), "la máscara debe ser idempotente para %q", tc.in)
	}
}

func TestFormatDNIInput(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"12.345.678", "12345678"},
		{"1234567890", "12345678"},
		{"5 123 456", "5123456"},
		{"dni: 30111222", "30111222"},
	}
	for _, tc := range cases {
		got := afip.FormatDNIInput(tc.in)
		assert.Equal(t, tc.want, got, "FormatDNIInput(%q)", tc.in)
		assert.Equal(t, got, afip.FormatDNIInput(got))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato de almacenamiento 00-XXXXXXXX-0
// ──────────────────────────────────────────────────────────────────────────────

func TestDNIStorageRoundTrip(t *testing.T) {
	stored := afip.DNIToStorageFormat("5123456")
	assert.Equal(t, "00-05123456-0", stored)
	assert.Equal(t, "5123456", afip.ExtractDNIFromStorage(stored))
	assert.Equal(t, afip.DocumentDNI, afip.DetectDocumentType(stored))
}

func TestDNIToStorageFormat_TruncaComoLaMascara(t *testing.T) {
	assert.Equal(t, "00-12345678-0", afip.DNIToStorageFormat("123456789"))
	assert.Equal(t, "00-12345678-0", afip.DNIToStorageFormat("12.345.678"))
	assert.Equal(t, "00-00000000-0", afip.DNIToStorageFormat(""))
}

func TestDNITodoCeros(t *testing.T) {
	stored := afip.DNIToStorageFormat("0")
	require.Equal(t, "00-00000000-0", stored)
	assert.Equal(t, "0", afip.ExtractDNIFromStorage(stored), "un DNI de ceros nunca devuelve cadena vacía")
	assert.Equal(t, afip.DocumentDNI, afip.DetectDocumentType(stored))
}

func TestExtractDNIFromStorage_PassThrough(t *testing.T) {
	assert.Equal(t, "", afip.ExtractDNIFromStorage(""))
	assert.Equal(t, "20-12345678-9", afip.ExtractDNIFromStorage("20-12345678-9"))
	assert.Equal(t, "00-1234567-0", afip.ExtractDNIFromStorage("00-1234567-0"))
	assert.Equal(t, "00-12345678-1", afip.ExtractDNIFromStorage("00-12345678-1"))
}

func TestDetectDocumentType(t *testing.T) {
	assert.Equal(t, afip.DocumentCUIT, afip.DetectDocumentType("20-12345678-9"))
	assert.Equal(t, afip.DocumentCUIT, afip.DetectDocumentType(""))
	assert.Equal(t, afip.DocumentCUIT, afip.DetectDocumentType("00-12345678-9"))
	assert.Equal(t, afip.DocumentCUIT, afip.DetectDocumentType(" 00-12345678-0"))
	assert.Equal(t, afip.DocumentDNI, afip.DetectDocumentType("00-30111222-0"))
}

func TestNormalizeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		typ     afip.DocumentType
		raw     string
		display string
	}{
		{afip.DocumentCUIT, "20123456789", "20-12345678-9"},
		{afip.DocumentCUIT, "30-71234567-1", "30-71234567-1"},
		{afip.DocumentDNI, "5123456", "5123456"},
		{afip.DocumentDNI, "30.111.222", "30111222"},
	}
	for _, tc := range cases {
		stored := afip.Normalize(tc.typ, tc.raw)
		gotType, gotDisplay := afip.Decode(stored)
		assert.Equal(t, tc.typ, gotType, "tipo perdido en el round-trip de %q", tc.raw)
		assert.Equal(t, tc.display, gotDisplay)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validadores
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateDNI(t *testing.T) {
	assert.False(t, afip.ValidateDNI("123456"))
	assert.True(t, afip.ValidateDNI("1234567"))
	assert.True(t, afip.ValidateDNI("12.345.678"))
	assert.False(t, afip.ValidateDNI("123456789"))
	assert.False(t, afip.ValidateDNI(""))
}

func TestValidateCUIT(t *testing.T) {
	assert.True(t, afip.ValidateCUIT("20-12345678-9"))
	assert.True(t, afip.ValidateCUIT("20123456789"))
	assert.False(t, afip.ValidateCUIT("2012345678"))
	assert.False(t, afip.ValidateCUIT("20.12345678.9"), "solo se quitan guiones")
	assert.False(t, afip.ValidateCUIT("20-1234567a-9"))
}

func TestParseDocumentType(t *testing.T) {
	typ, ok := afip.ParseDocumentType(" dni ")
	require.True(t, ok)
	assert.Equal(t, afip.DocumentDNI, typ)

	_, ok = afip.ParseDocumentType("pasaporte")
	assert.False(t, ok)
}

func TestCUITCheckDigit(t *testing.T) {
	// 20-12345678-6: 2*5+0*4+1*3+2*2+3*7+4*6+5*5+6*4+7*3+8*2 = 148; 148 % 11 = 5; 11-5 = 6
	d, err := afip.ComputeCUITCheckDigit("2012345678")
	require.NoError(t, err)
	assert.Equal(t, byte('6'), d)

	assert.True(t, afip.CUITCheckDigitValid("20-12345678-6"))
	assert.False(t, afip.CUITCheckDigitValid("20-12345678-9"))
	assert.False(t, afip.CUITCheckDigitValid("20-1234567"))

	_, err = afip.ComputeCUITCheckDigit("123")
	assert.Error(t, err)
}

func TestValidate_CUITConFormaDeDNI(t *testing.T) {
	assert.False(t, afip.Validate(afip.DocumentCUIT, "00-12345678-0"))
	assert.False(t, afip.Validate(afip.DocumentCUIT, "00123456780"))
	assert.True(t, afip.Validate(afip.DocumentCUIT, "00-12345678-1"))
	assert.False(t, afip.Validate(afip.DocumentCUIT, "20-12345678-9999"))
	assert.True(t, afip.Validate(afip.DocumentDNI, "12345678"))
}

func TestCheck_CUITEstricto(t *testing.T) {
	assert.True(t, afip.Check(afip.DocumentCUIT, "20-12345678-9", false))
	assert.False(t, afip.Check(afip.DocumentCUIT, "20-12345678-9", true))
	assert.True(t, afip.Check(afip.DocumentCUIT, "20-12345678-6", true))
	assert.False(t, afip.Check(afip.DocumentCUIT, "00-12345678-0", false))
	assert.True(t, afip.Check(afip.DocumentDNI, "5.123.456", true), "el DNI no tiene verificador")
}
