package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ablemeditech-dev/able-inventory-sub001/pkg/config"
)

// NewPool crea el pool de conexiones de solo lectura hacia el almacén de movimientos
// y verifica la conexión con un ping.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// newPoolConfig arma la configuración del pool sin abrir conexiones.
func newPoolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// El libro lo escribe otro sistema; cualquier escritura desde aquí debe fallar.
	poolConfig.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"
	if cfg.ForceIPv4 {
		poolConfig.ConnConfig.DialFunc = dialIPv4
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// quantity se escanea a shopspring/decimal (NUMERIC e INTEGER) en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}

// dialIPv4 conecta solo por IPv4 (DB_FORCE_IPV4), para redes sin salida IPv6.
func dialIPv4(ctx context.Context, _, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp4", addr)
}
