package environment

import "os"

func GetMongoURI() string {
	return os.Getenv("MONGO_URI")
}

func GetMongoDatabase() string {
	name := os.Getenv("MONGO_DATABASE")
	if name == "" {
		name = "bistroboss"
	}
	return name
}

func GetJWTSecret() string {
	return os.Getenv("JWT_ACCESS_TOKEN")
}

func GetStripeKey() string {
	return os.Getenv("STRIPE_SECRET_KEY")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return port
}
