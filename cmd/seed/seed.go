package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/continuum-hq/model-router/internal/platform/logger"
	"github.com/continuum-hq/model-router/internal/store/model"
	"github.com/continuum-hq/model-router/internal/store/sqlite"
)

func main() {
	repo, err := sqlite.NewSQLiteStorage("continuum.db", logger.Get())
	if err != nil {
		log.Fatal(err)
	}
	defer repo.Close()

	ctx := context.Background()

	rawKey := "sk-continuum-dev-1234567890"
	hash := sha256.Sum256([]byte(rawKey))
	hashedHex := hex.EncodeToString(hash[:])

	key := &model.APIKey{
		ID:        uuid.New().String(),
		Name:      "Development Key",
		KeyHash:   hashedHex,
		KeyPrefix: "sk-continuum-",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.APIKeys().Create(ctx, key); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Created API Key: %s\n", key.ID)
	fmt.Printf("Raw Key (save this): %s\n", rawKey)
}
