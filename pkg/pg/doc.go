// Package pg connects the edge to PostgreSQL through a pgx/v5 pool and
// keeps the schema current with goose.
//
// Connect retries with exponential backoff until the database answers a
// ping or the attempts run out. Migrate applies the embedded goose
// migrations over the same pool. Healthcheck plugs into the HTTP server's
// readiness probe.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//	if err := pg.Migrate(ctx, pool, db.Migrations, cfg, log); err != nil {
//		return err
//	}
package pg
