package scaler

import (
	"context"
	"fmt"

	"github.com/uyouii/timeseries-standardization/common"
	"github.com/uyouii/timeseries-standardization/model"
	"github.com/uyouii/timeseries-standardization/utils"
	"go.uber.org/zap"
)

// StandardizeFrame standardizes every column of frame with the mode given for its name,
// the params of each column are returned by column name.
func StandardizeFrame(ctx context.Context, frame *model.Frame,
	modes map[string]model.Mode) (res *model.Frame, params map[string]model.Params, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("StandardizeFrame recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("frame", frame.DebugString()))
			res, params, err = nil, nil, fmt.Errorf("panic: %v: %w", r, common.ErrorInternal)
		}
	}()

	if frame == nil {
		return nil, nil, fmt.Errorf("nil frame: %w", common.ErrorInvalidInput)
	}

	res = model.NewFrame()
	params = make(map[string]model.Params, len(frame.Columns))

	for _, column := range frame.Columns {
		mode, ok := modes[column.Name]
		if !ok {
			logger.Error("no mode for column", zap.String("column", column.Name))
			return nil, nil, fmt.Errorf("column %q has no mode: %w", column.Name, common.ErrorInvalidMode)
		}

		scaled, columnParams, err := Standardize(column.Series, mode)
		if err != nil {
			logger.Error("Standardize failed", zap.Error(err),
				zap.String("column", column.Name), zap.String("mode", mode.Name()))
			return nil, nil, fmt.Errorf("column %q: %w", column.Name, err)
		}

		res.Set(column.Name, scaled)
		params[column.Name] = columnParams
	}

	logger.Info("StandardizeFrame success", zap.Int("columnCnt", len(res.Columns)), zap.Any("params", params))
	return res, params, nil
}

// UnstandardizeFrame reverts StandardizeFrame column by column.
func UnstandardizeFrame(ctx context.Context, frame *model.Frame, modes map[string]model.Mode,
	params map[string]model.Params) (res *model.Frame, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("UnstandardizeFrame recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("frame", frame.DebugString()))
			res, err = nil, fmt.Errorf("panic: %v: %w", r, common.ErrorInternal)
		}
	}()

	if frame == nil {
		return nil, fmt.Errorf("nil frame: %w", common.ErrorInvalidInput)
	}

	res = model.NewFrame()

	for _, column := range frame.Columns {
		mode, ok := modes[column.Name]
		if !ok {
			logger.Error("no mode for column", zap.String("column", column.Name))
			return nil, fmt.Errorf("column %q has no mode: %w", column.Name, common.ErrorInvalidMode)
		}

		unscaled, err := Unstandardize(column.Series, mode, params[column.Name])
		if err != nil {
			logger.Error("Unstandardize failed", zap.Error(err),
				zap.String("column", column.Name), zap.String("mode", mode.Name()))
			return nil, fmt.Errorf("column %q: %w", column.Name, err)
		}
		res.Set(column.Name, unscaled)
	}

	logger.Info("UnstandardizeFrame success", zap.Int("columnCnt", len(res.Columns)))
	return res, nil
}
