package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"receiptapi/internal/amountwords"
	"receiptapi/internal/model"
	"receiptapi/internal/service"
	"receiptapi/internal/storage"
)

const generationFailedMessage = "failed to generate receipt, please retry"

// amountResponse is returned by AmountInWords.
type amountResponse struct {
	Amount string `json:"amount"`
	Words  string `json:"words"`
}

type previewResponse struct {
	Instructions any `json:"instructions"`
}

func parseInput(c *fiber.Ctx) (model.ReceiptInput, error) {
	var in model.ReceiptInput
	if err := c.BodyParser(&in); err != nil {
		return in, err
	}
	return in, nil
}

// writeServiceError translates the shared service errors. handled is false
// when err is none of them.
func writeServiceError(c *fiber.Ctx, err error) (handled bool, werr error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return true, writeValidationError(c, verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		return true, writeError(c, fiber.StatusNotFound, "NOT_FOUND", "receipt not found")
	case errors.Is(err, service.ErrIDRequired):
		return true, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	}
	return false, nil
}

func receiptID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// CreateReceipt godoc
// @Summary Generate a sale receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param input body model.ReceiptInput true "Receipt form"
// @Success 201 {object} model.Receipt
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /receipts [post]
func CreateReceipt(svc service.ReceiptService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON receipt form")
		}

		rec, err := svc.Generate(c.UserContext(), in)
		if err != nil {
			if ok, werr := writeServiceError(c, err); ok {
				return werr
			}
			return internalError(c, log, "GENERATION_FAILED", generationFailedMessage, err)
		}
		c.Location("/receipts/" + rec.ID)
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// PreviewReceipt godoc
// @Summary Preview the drawing instructions of a receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param input body model.ReceiptInput true "Receipt form"
// @Success 200 {object} previewResponse
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /receipts/preview [post]
func PreviewReceipt(svc service.ReceiptService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON receipt form")
		}

		seq, err := svc.Preview(c.UserContext(), in)
		if err != nil {
			if ok, werr := writeServiceError(c, err); ok {
				return werr
			}
			return internalError(c, log, "INTERNAL_ERROR", "internal server error", err)
		}
		return c.JSON(previewResponse{Instructions: seq})
	}
}

// ListReceipts godoc
// @Summary List receipts, newest first
// @Tags receipts
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "rows to skip" default(0)
// @Success 200 {object} service.ReceiptListResult
// @Failure 400 {object} errorPayload
// @Router /receipts [get]
func ListReceipts(svc service.ReceiptService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return internalError(c, log, "INTERNAL_ERROR", "internal server error", err)
		}
		return c.JSON(res)
	}
}

// GetReceipt godoc
// @Summary Receipt metadata
// @Tags receipts
// @Produce json
// @Param id path string true "receipt id"
// @Success 200 {object} model.Receipt
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /receipts/{id} [get]
func GetReceipt(svc service.ReceiptService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := receiptID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if ok, werr := writeServiceError(c, err); ok {
				return werr
			}
			return internalError(c, log, "INTERNAL_ERROR", "internal server error", err)
		}
		return c.JSON(rec)
	}
}

// DownloadReceipt godoc
// @Summary Download the receipt PDF
// @Tags receipts
// @Produce application/pdf
// @Param id path string true "receipt id"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /receipts/{id}/download [get]
func DownloadReceipt(svc service.ReceiptService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := receiptID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rc, rec, err := svc.Open(c.UserContext(), id)
		if err != nil {
			if ok, werr := writeServiceError(c, err); ok {
				return werr
			}
			return internalError(c, log, "INTERNAL_ERROR", "internal server error", err)
		}

		c.Set(fiber.HeaderContentType, rec.ContentType)
		c.Set(fiber.HeaderContentDisposition, storage.AttachmentDisposition(rec.Filename))
		// fasthttp closes rc once the body has been written.
		return c.SendStream(rc, int(rec.Size))
	}
}

// ReceiptURL godoc
// @Summary Presigned download URL
// @Tags receipts
// @Produce json
// @Param id path string true "receipt id"
// @Success 200 {object} service.DownloadURL
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /receipts/{id}/url [get]
func ReceiptURL(svc service.ReceiptService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := receiptID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.PresignDownload(c.UserContext(), id)
		if err != nil {
			if ok, werr := writeServiceError(c, err); ok {
				return werr
			}
			return internalError(c, log, "INTERNAL_ERROR", "internal server error", err)
		}
		return c.JSON(u)
	}
}

// DeleteReceipt godoc
// @Summary Delete a receipt and its PDF
// @Tags receipts
// @Param id path string true "receipt id"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /receipts/{id} [delete]
func DeleteReceipt(svc service.ReceiptService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := receiptID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if ok, werr := writeServiceError(c, err); ok {
				return werr
			}
			return internalError(c, log, "INTERNAL_ERROR", "internal server error", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AmountInWords godoc
// @Summary Spell an amount in the Indian numbering system
// @Tags tools
// @Produce json
// @Param amount query string true "amount, e.g. 150000"
// @Success 200 {object} amountResponse
// @Failure 400 {object} errorPayload
// @Router /amount-in-words [get]
func AmountInWords() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Query("amount"))
		if raw == "" {
			return writeError(c, fiber.StatusBadRequest, "AMOUNT_REQUIRED", "amount is required")
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "amount must be a number")
		}
		return c.JSON(amountResponse{
			Amount: amount.String(),
			Words:  amountwords.ConvertDecimal(amount),
		})
	}
}
