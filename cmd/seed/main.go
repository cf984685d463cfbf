package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/campuscompass/api-server/internal/database"
	"github.com/campuscompass/api-server/internal/logger"
	"github.com/campuscompass/api-server/internal/models"
	"github.com/campuscompass/api-server/internal/repository"
	"github.com/campuscompass/api-server/pkg/config"
)

// sampleColleges are inserted when seeding an empty database without a CSV
var sampleColleges = []models.College{
	{Name: "GCTC", Location: "Hyderabad", Fees: fee(100000), Branches: models.BranchList{"CSE", "IT", "EEE"}},
	{Name: "Tech College", Location: "Hyderabad", Fees: fee(140000), Branches: models.BranchList{"CSE", "CSE-Cyber", "AI"}},
}

func fee(amount int64) *int64 {
	return &amount
}

func main() {
	csvPath := flag.String("csv", "", "CSV file to load (name,location,fees,branches); omit to insert sample data")
	flag.Parse()

	godotenv.Load()

	cfg := config.New()
	log := logger.New(cfg.Environment)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	repo := repository.NewCollegeRepository(db.DB)
	ctx := context.Background()

	colleges := sampleColleges
	if *csvPath != "" {
		colleges, err = loadCollegesCSV(*csvPath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *csvPath).Msg("Failed to load CSV")
		}
	} else {
		// Sample data only seeds an empty database
		count, err := repo.Count(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to count colleges")
		}
		if count > 0 {
			log.Info().Int64("colleges", count).Msg("Database already seeded, nothing to do")
			return
		}
	}

	if err := repo.BulkInsert(ctx, colleges); err != nil {
		log.Fatal().Err(err).Msg("Failed to insert colleges")
	}

	log.Info().Int("colleges", len(colleges)).Str("database", cfg.DatabasePath).Msg("Seeded database")
}

// loadCollegesCSV parses rows of name,location,fees,branches. The fees
// column may be empty (unknown); branches are comma-separated inside one
// quoted CSV field. A leading header row is skipped.
func loadCollegesCSV(path string) ([]models.College, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 4

	var colleges []models.College
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		line++

		// Skip header row
		if line == 1 && strings.EqualFold(record[0], "name") {
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("row %d: college name is required", line)
		}

		college := models.College{
			Name:     name,
			Location: strings.TrimSpace(record[1]),
		}

		if feesText := strings.TrimSpace(record[2]); feesText != "" {
			fees, err := strconv.ParseInt(feesText, 10, 64)
			if err != nil || fees < 0 {
				return nil, fmt.Errorf("row %d: invalid fees %q", line, record[2])
			}
			college.Fees = &fees
		}

		if branchText := strings.TrimSpace(record[3]); branchText != "" {
			college.Branches = models.BranchList(strings.Split(branchText, ","))
		} else {
			college.Branches = models.BranchList{}
		}

		colleges = append(colleges, college)
	}

	if len(colleges) == 0 {
		return nil, fmt.Errorf("no colleges found in %s", path)
	}

	return colleges, nil
}
