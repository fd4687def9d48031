package reservationunit

import "github.com/m04kA/SMC-ApplicationRounds/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
