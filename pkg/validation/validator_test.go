package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type credentials struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestPasswordAliasBoundary(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(credentials{Email: "a@b.co", Password: "123456"}))

	err := v.Struct(credentials{Email: "a@b.co", Password: "12345"})
	assert.Equal(t, map[string]string{"password": "must be at least 6 characters"}, ToDetails(err))
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	err := newValidator().Struct(credentials{Email: "nope", Password: ""})
	d := ToDetails(err)
	assert.Equal(t, "must be a valid email", d["email"])
	assert.Equal(t, "is required", d["password"])
	assert.False(t, IsMalformed(err))
}

func TestToDetailsMalformedJSON(t *testing.T) {
	var dst credentials
	err := json.Unmarshal([]byte("{"), &dst)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.True(t, IsMalformed(err))
	assert.Nil(t, ToDetails(nil))
}
