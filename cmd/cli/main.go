package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/weathermate/backend/internal/service"
	"github.com/weathermate/backend/pkg/config"
)

// Interactive one-shot lookup: ask for a city, fetch current conditions,
// print the reading and the recommendations. Exit 0 on success, 1 on any
// fetch or reading failure.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	weatherSvc := service.NewWeatherService(cfg.Weather, zap.NewNop())
	engine := service.NewRecommendationEngine(service.DefaultRuleSet())

	in := bufio.NewReader(os.Stdin)

	fmt.Println("Welcome to WeatherMate!")
	city := prompt(in, "Enter the city you'd like weather advice for: ")
	if city == "" {
		fmt.Fprintln(os.Stderr, "a city name is required")
		return 1
	}
	region := prompt(in, "State or country (optional, helps with duplicate city names): ")

	location := service.Location(city, region)
	fmt.Printf("Fetching weather for %s...\n", location)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Weather.Timeout)
	defer cancel()

	reading, err := weatherSvc.CurrentConditions(ctx, location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "an error occurred: %v\n", err)
		return 1
	}

	recs, err := engine.Recommend(reading)
	if err != nil {
		fmt.Fprintf(os.Stderr, "an error occurred: %v\n", err)
		return 1
	}

	fmt.Println()
	fmt.Println("Weather Report:")
	place := reading.City
	if reading.Country != "" {
		place += ", " + reading.Country
	}
	fmt.Printf("  Location:      %s\n", place)
	fmt.Printf("  Temperature:   %.1f °C\n", reading.TemperatureC)
	fmt.Printf("  Condition:     %s\n", reading.Condition)
	fmt.Printf("  Precipitation: %.1f mm\n", reading.PrecipitationMM)
	if reading.IsMock {
		fmt.Println("  (simulated data: no API key configured)")
	}

	fmt.Println()
	fmt.Println("Recommendations:")
	for _, rec := range recs {
		fmt.Printf("  - %s\n", rec.Text)
	}

	fmt.Println()
	fmt.Println("Thanks for using WeatherMate, have a great day!")
	return 0
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
