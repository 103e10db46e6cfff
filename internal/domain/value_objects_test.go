package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  string
	}{
		{"test@example.com", true, "test@example.com"},
		{"  Mixed.Case@Example.COM ", true, "mixed.case@example.com"},
		{"", false, ""},
		{"no-at-sign", false, ""},
		{"a@b", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			email, err := NewEmail(tt.raw)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestNewCPF(t *testing.T) {
	cpf, err := NewCPF("529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", cpf.String())
	assert.Equal(t, "529.982.247-25", cpf.Formatted())

	invalid := []string{"", "123", "52998224724", "111.111.111-11", "529982247250"}
	for _, raw := range invalid {
		t.Run(raw, func(t *testing.T) {
			_, err := NewCPF(raw)
			assert.Error(t, err)
		})
	}
}

func TestNewPhone(t *testing.T) {
	phone, err := NewPhone("+55 (11) 99999-0000")
	require.NoError(t, err)
	assert.Equal(t, "+5511999990000", phone.String())

	phone, err = NewPhone("11 99999 0000")
	require.NoError(t, err)
	assert.Equal(t, "11999990000", phone.String())

	invalid := []string{"", "12345", "11-9999-abcd", "55+11999990000", "1234567890123456"}
	for _, raw := range invalid {
		t.Run(raw, func(t *testing.T) {
			_, err := NewPhone(raw)
			assert.Error(t, err)
		})
	}
}

func TestNewCustomer(t *testing.T) {
	cpf := "529.982.247-25"
	customer, err := NewCustomer(" Ana ", "ana@example.com", &cpf, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Ana", customer.Name)
	require.NotNil(t, customer.CPF)
	assert.Equal(t, "52998224725", customer.CPF.String())
	assert.Nil(t, customer.Phone)

	_, err = NewCustomer("", "ana@example.com", nil, nil)
	assert.Error(t, err)

	bad := "123"
	_, err = NewCustomer("Ana", "ana@example.com", &bad, nil)
	assert.Error(t, err)
}
