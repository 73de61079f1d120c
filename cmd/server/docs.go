package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           FounderSight API
// @version         0.1.0
// @description     Startup analytics: metrics import, AI predictions, growth playbooks.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
