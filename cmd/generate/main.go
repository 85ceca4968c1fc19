package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redditpersona/persona-bot/internal/persona"
	"github.com/redditpersona/persona-bot/internal/report"
	"github.com/redditpersona/persona-bot/internal/sources"
	"github.com/redditpersona/persona-bot/internal/storage"
	"github.com/sirupsen/logrus"
)

// generate is the one-shot CLI: fetch a Reddit user's posts and comments,
// infer a persona, and write the report to the output directory.
func main() {
	os.Exit(run())
}

func run() int {
	limit := flag.Int("limit", 100, "Maximum number of posts/comments to analyze")
	output := flag.String("output", "output", "Output directory for persona files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	profileURL := flag.Arg(0)
	if profileURL == "" {
		profileURL = promptForURL()
		if profileURL == "" {
			fmt.Println("Error: No profile URL provided.")
			return 1
		}
	}

	username, err := sources.ExtractUsername(profileURL)
	if err != nil {
		logrus.Errorf("Invalid URL: %v", err)
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Please provide a valid Reddit profile URL like: https://www.reddit.com/user/username/")
		return 1
	}

	logrus.Infof("Analyzing Reddit user: %s", username)
	fmt.Printf("\nStarting analysis of Reddit user: u/%s\n", username)
	fmt.Println("This may take a few minutes...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	source := sources.NewRedditSource(0.5, time.Minute)
	records, err := source.FetchRecords(ctx, username, *limit)
	if err != nil {
		logrus.Errorf("Error fetching records: %v", err)
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	engine := persona.NewEngine()
	result, err := engine.Infer(records, username)
	if err != nil {
		if err == persona.ErrNoRecords {
			logrus.Error("No records found for this user. The profile might be private or empty.")
			fmt.Println("Error: No posts found for this user. The profile might be private, empty, or the username might be incorrect.")
			return 1
		}
		logrus.Errorf("Error generating persona: %v", err)
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Printf("Found %d posts/comments to analyze...\n", len(records))

	archive, err := storage.NewLocalArchive(*output)
	if err != nil {
		logrus.Errorf("Failed to create output directory: %v", err)
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	filename := fmt.Sprintf("%s_persona.txt", username)
	if err := archive.Store(filename, []byte(report.RenderText(result))); err != nil {
		logrus.Errorf("Failed to save persona: %v", err)
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Println("\nPersona generation complete!")
	fmt.Printf("Results saved to: %s/%s\n", *output, filename)
	fmt.Printf("Analyzed %d posts/comments from u/%s\n", result.RecordsAnalyzed, username)
	return 0
}

func promptForURL() string {
	fmt.Println("Reddit User Persona Generator")
	fmt.Println("========================================")
	fmt.Println("Please provide a Reddit profile URL.")
	fmt.Println("Examples:")
	fmt.Println("  https://www.reddit.com/user/kojied/")
	fmt.Println("  https://www.reddit.com/user/Hungry-Move-6603/")
	fmt.Println()
	fmt.Print("Enter Reddit profile URL: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
