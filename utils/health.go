package utils

import (
	"context"
	"time"

	"counselhub/database"
)

// HealthCheck pings MongoDB and Redis, reporting each dependency's status.
func HealthCheck() map[string]string {
	status := map[string]string{"service": "ok"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := database.MongoClient.Ping(ctx, nil); err != nil {
		status["mongo"] = "down: " + err.Error()
	} else {
		status["mongo"] = "ok"
	}

	if err := GetCacheClient().Ping(ctx).Err(); err != nil {
		status["redis"] = "down: " + err.Error()
	} else {
		status["redis"] = "ok"
	}

	return status
}
