package service

import (
	"bytes"
	"context"
	"fmt"
	"reception/internal/domains/billing/model"
	"reception/internal/domains/billing/model/dto"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet      = "Payments"
	exportTimeLayout = "20060102-150405"
)

var exportColumns = []string{"Receipt", "Date", "Guest", "Room", "Booking", "Method", "Amount"}

// ExportPayments renders the payment history as a workbook and uploads it when S3 is configured.
func (s *serviceImpl) ExportPayments(ctx context.Context, params gDto.QueryParams) (res model.Export, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	history, err := s.PaymentHistory(ctx, params)
	if err != nil {
		return res, err
	}

	content, err := renderPayments(history)
	if err != nil {
		log.Error().Err(err).Msg("failed to render payment export")

		return res, fmt.Errorf("failed to render payment export: %w", err)
	}

	res.FileName = fmt.Sprintf("payments-%s.xlsx", timezone.Format(timezone.Now(), exportTimeLayout))
	res.Content = content

	if !s.s3.Enabled() {
		return res, nil
	}

	res.URL, err = s.s3.UploadFileBytes(ctx, s.cfg.Billing.ExportPrefix, res.FileName, constant.ContentTypeXLSX, content)
	if err != nil {
		log.Error().Err(err).Str("file", res.FileName).Msg("failed to upload payment export")

		return res, fmt.Errorf("failed to upload payment export: %w", err)
	}

	return res, nil
}

func renderPayments(history dto.GetPaymentsResponse) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(file, 1, toRow(exportColumns)); err != nil {
		return nil, err
	}

	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = file.SetCellStyle(exportSheet, "A1", endCell, style)
	}

	for i, payment := range history.Payments {
		row := []any{
			payment.ReceiptNumber,
			payment.PaymentDate,
			payment.GuestName,
			payment.RoomNumber,
			payment.BookingID,
			payment.PaymentMethod,
			payment.Amount,
		}

		if err := writeRow(file, i+2, row); err != nil {
			return nil, err
		}
	}

	totalRow := len(history.Payments) + 2
	if err := writeRow(file, totalRow, []any{"Total", "", "", "", "", "", history.Total}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRow(file *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("resolve row %d: %w", rowNum, err)
	}

	if err := file.SetSheetRow(exportSheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}

	return nil
}

func toRow(columns []string) []any {
	row := make([]any, len(columns))
	for i, column := range columns {
		row[i] = column
	}

	return row
}
