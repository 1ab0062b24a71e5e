package mocks

import (
	"github.com/stretchr/testify/mock"

	"receiptapi/internal/receipt"
	"receiptapi/internal/render"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(seq receipt.Sequence, meta render.Meta) ([]byte, error) {
	args := m.Called(seq, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
