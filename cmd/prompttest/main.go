package main

// Try the generation prompts against a real document from the terminal:
//   go run ./cmd/prompttest -pdf notes.pdf -kind quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studykit-backend/internal/extract"
	"studykit-backend/internal/generation"
	"studykit-backend/internal/llm/openrouter"
	"studykit-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	pdfPath := flag.String("pdf", "", "Path to a PDF to extract text from")
	textPath := flag.String("text", "", "Path to a plain text file (alternative to -pdf)")
	kind := flag.String("kind", "all", "Artifact to generate: summary, quiz, flashcards, or all")
	model := flag.String("model", cfg.LLMModel, "Model identifier")
	outPath := flag.String("out", "", "Path to write the JSON output (optional)")
	flag.Parse()

	text, err := sourceText(*pdfPath, *textPath)
	if err != nil {
		exitErr(err.Error())
	}

	client, err := openrouter.New(openrouter.Config{
		APIKey:   cfg.OpenRouterAPIKey,
		BaseURL:  cfg.LLMBaseURL,
		Model:    *model,
		Referer:  cfg.LLMReferer,
		AppTitle: cfg.LLMAppTitle,
	})
	if err != nil {
		exitErr(err.Error())
	}
	svc := &generation.Service{LLM: client, MaxTokens: cfg.LLMMaxTokens}

	ctx := context.Background()
	var result interface{}
	switch strings.ToLower(strings.TrimSpace(*kind)) {
	case "summary":
		result, err = svc.Summary(ctx, text)
	case "quiz":
		result, err = svc.Quiz(ctx, text)
	case "flashcards":
		result, err = svc.Flashcards(ctx, text)
	case "", "all":
		result, err = svc.All(ctx, text)
	default:
		exitErr(fmt.Sprintf("unsupported kind: %s", *kind))
	}
	if err != nil {
		exitErr(fmt.Sprintf("generate: %v", err))
	}

	pretty, err := prettyJSON(result)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	if len(pretty) == 0 || pretty[len(pretty)-1] != '\n' {
		_, _ = os.Stdout.Write([]byte("\n"))
	}
}

func sourceText(pdfPath, textPath string) (string, error) {
	switch {
	case strings.TrimSpace(pdfPath) != "":
		if strings.ToLower(filepath.Ext(pdfPath)) != ".pdf" {
			return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(pdfPath))
		}
		data, err := os.ReadFile(pdfPath)
		if err != nil {
			return "", fmt.Errorf("read pdf: %w", err)
		}
		text, err := extract.Text(data)
		if err != nil {
			return "", fmt.Errorf("extract pdf text: %w", err)
		}
		return text, nil
	case strings.TrimSpace(textPath) != "":
		data, err := os.ReadFile(textPath)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("either -pdf or -text is required")
	}
}

func prettyJSON(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
