package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/raushankrgupta/ayush-ai/report"
	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
)

// assess runs the assessment pipeline for a profile stored as JSON and
// prints the result. Gemini is used only when GEMINI_API_KEY is set.
func main() {
	profilePath := flag.String("profile", "", "path to a profile JSON file")
	pdfPath := flag.String("pdf", "", "also write the report as a PDF to this path")
	flag.Parse()

	if *profilePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	_ = godotenv.Load()

	raw, err := os.ReadFile(*profilePath)
	if err != nil {
		log.Fatalf("Failed to read profile: %v", err)
	}
	var p wellness.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Fatalf("Failed to parse profile: %v", err)
	}

	ctx := context.Background()
	var gen wellness.Generator
	if client, err := utils.NewGeminiClient(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL")); err == nil {
		defer client.Close()
		gen = client
	}

	assessment, err := wellness.NewEngine(wellness.NewComposer(gen, nil)).Assess(ctx, p)
	if err != nil {
		log.Fatalf("Assessment failed: %v", err)
	}

	c := assessment.Constitution
	fmt.Printf("Constitution: vata %d%%, pitta %d%%, kapha %d%% (dominant %s)\n", c.Vata, c.Pitta, c.Kapha, assessment.Dominant)
	b, _ := json.MarshalIndent(assessment.Metrics, "", "  ")
	fmt.Printf("Metrics: %s\n", string(b))
	fmt.Printf("Source: %s\n", assessment.Recommendation.Source)
	fmt.Println("--------------------------------------------------")
	fmt.Println(assessment.Recommendation.Content)

	if *pdfPath != "" {
		data, _, _, err := report.RecommendationPDF(report.RecommendationInput{
			Name:           p.Name,
			Constitution:   c,
			Metrics:        &assessment.Metrics,
			Recommendation: assessment.Recommendation,
		})
		if err != nil {
			log.Fatalf("Failed to render PDF: %v", err)
		}
		if err := os.WriteFile(*pdfPath, data, 0o644); err != nil {
			log.Fatalf("Failed to write PDF: %v", err)
		}
		fmt.Printf("PDF written to %s\n", *pdfPath)
	}
}
