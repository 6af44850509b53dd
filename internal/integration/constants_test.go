package integration_test

const (
	dbName         = "theatre_reservation"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	testUserEmail    = "integration@example.com"
	testUserPassword = "Str0ng!Pass"
)
