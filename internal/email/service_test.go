package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type mockDialer struct {
	mock.Mock
}

func (m *mockDialer) DialAndSend(msgs ...*gomail.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

func TestSendConsultationConfirmation(t *testing.T) {
	d := new(mockDialer)
	var sent *gomail.Message
	d.On("DialAndSend", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).([]*gomail.Message)[0]
	}).Return(nil)

	svc := NewWithDialer(d, "clinic@example.com")
	require.NoError(t, svc.SendConsultationConfirmation(context.Background(), "ada@example.com", "Ada", "2024-02-15"))

	d.AssertNumberOfCalls(t, "DialAndSend", 1)
	assert.Equal(t, []string{"ada@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"clinic@example.com"}, sent.GetHeader("From"))

	var buf bytes.Buffer
	_, err := sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2024-02-15")
}

func TestSendConsultationConfirmationError(t *testing.T) {
	d := new(mockDialer)
	d.On("DialAndSend", mock.Anything).Return(errors.New("connection refused"))

	err := NewWithDialer(d, "clinic@example.com").
		SendConsultationConfirmation(context.Background(), "ada@example.com", "Ada", "2024-02-15")
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewServiceWithoutHostIsNop(t *testing.T) {
	svc := NewService(Config{})
	assert.IsType(t, NopService{}, svc)
	assert.NoError(t, svc.SendConsultationConfirmation(context.Background(), "a@b.co", "A", "2024-01-01"))
}
