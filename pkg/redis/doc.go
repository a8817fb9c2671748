// Package redis connects the application to a Redis server with retry
// semantics and a readiness health check.
//
// Custom-domain resolution uses Redis as its shared resolution cache (see
// customdomain.NewRedisCache), so every instance behind a load balancer sees
// an invalidated hostname at the same moment.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil { ... }
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer client.Close()
//
//	checker := redis.Healthcheck(client)
//	if err := checker(ctx); err != nil {
//	    // redis is not healthy
//	}
//
// Sentinel errors (e.g. ErrRedisNotReady) wrap the underlying go-redis errors
// with errors.Join, so callers can match them with errors.Is.
package redis
