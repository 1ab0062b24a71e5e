package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"receiptapi/internal/model"
	"receiptapi/internal/receipt"
	"receiptapi/internal/service"
)

type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) Preview(ctx context.Context, in model.ReceiptInput) (receipt.Sequence, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(receipt.Sequence), args.Error(1)
}

func (m *MockReceiptService) Generate(ctx context.Context, in model.ReceiptInput) (*model.Receipt, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockReceiptService) List(ctx context.Context, limit, offset int) (*service.ReceiptListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReceiptListResult), args.Error(1)
}

func (m *MockReceiptService) Get(ctx context.Context, id string) (*model.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockReceiptService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Receipt), args.Error(2)
}

func (m *MockReceiptService) PresignDownload(ctx context.Context, id string) (*service.DownloadURL, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadURL), args.Error(1)
}

func (m *MockReceiptService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
