package appointment

import "github.com/danielnamimi665/barber-shop-web/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
