package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fbr-invoice-backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FieldName string           `json:"fieldName" binding:"required,min=1,max=50,fieldname"`
	Password  string           `json:"password" binding:"required,min=8,password"`
	Amount    *decimal.Decimal `json:"amount" binding:"required,gte=0"`
	Items     []sampleItem     `json:"items" binding:"required,min=1,dive"`
}

type sampleItem struct {
	HSCodeID string `json:"hsCodeId" binding:"required,uuid"`
}

func bind(t *testing.T, payload string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Register()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	var s sample
	return c.ShouldBindJSON(&s)
}

func TestBindingAcceptsValidPayload(t *testing.T) {
	err := bind(t, `{"fieldName":"Batch No","password":"Str0ng!pw","amount":0,"items":[{"hsCodeId":"8f14e45f-ceea-4a7b-9a7e-6d2f1c3b2a10"}]}`)
	require.NoError(t, err)
}

func TestBindingReportsJSONFieldPaths(t *testing.T) {
	err := bind(t, `{"fieldName":"bad-name!","password":"weakpassword","amount":-1,"items":[{"hsCodeId":"nope"}]}`)
	require.Error(t, err)

	appErr := apperr.FromBinding(err)
	fields := map[string]string{}
	for _, fe := range appErr.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "Field name can only contain letters, numbers, underscores, and spaces", fields["fieldName"])
	assert.Contains(t, fields["password"], "uppercase")
	assert.Contains(t, fields, "amount")
	assert.Equal(t, "hsCodeId must be a valid UUID", fields["items[0].hsCodeId"])
}

func TestBindingMissingDecimal(t *testing.T) {
	err := bind(t, `{"fieldName":"x","password":"Str0ng!pw","items":[{"hsCodeId":"8f14e45f-ceea-4a7b-9a7e-6d2f1c3b2a10"}]}`)
	require.Error(t, err)
	appErr := apperr.FromBinding(err)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "amount is required", appErr.Errors[0].Message)
}

func TestFromBindingSyntax(t *testing.T) {
	err := bind(t, `{"fieldName":`)
	require.Error(t, err)
	appErr := apperr.FromBinding(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, StrongPassword("Abcdef1!"))
	assert.False(t, StrongPassword("abcdef1!"))
	assert.False(t, StrongPassword("ABCDEF1!"))
	assert.False(t, StrongPassword("Abcdefg!"))
	assert.False(t, StrongPassword("Abcdefg1"))
}
