package models

import (
	"errors"
	"fmt"

	"github.com/amangusss/trainer-workload/internal/lib/codedenum"
)

var (
	// ErrNotFound — общий признак отсутствия тренера или периода.
	ErrNotFound = errors.New("not found")
	// ErrTrainerNotFound — нагрузка тренера с таким username не найдена.
	ErrTrainerNotFound = fmt.Errorf("trainer %w", ErrNotFound)
	// ErrWorkloadNotFound — у тренера нет часов за указанный год или месяц.
	ErrWorkloadNotFound = fmt.Errorf("workload %w", ErrNotFound)
	// ErrValidation — входные данные некорректны или неполны.
	ErrValidation = errors.New("validation error")
	// ErrUnsupportedCode — код перечисления не распознан.
	ErrUnsupportedCode = codedenum.ErrUnsupportedCode
)
