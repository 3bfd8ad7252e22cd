package reservation

import "github.com/m04kA/Restaurant-BookingService/pkg/txmanager"

// DBExecutor интерфейс выполнения запросов (*sql.DB или *sql.Tx)
type DBExecutor = txmanager.DBExecutor
