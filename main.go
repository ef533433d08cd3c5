package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pageturn/internal/config"
	"pageturn/internal/content"
	"pageturn/internal/eventbus"
	"pageturn/internal/render"
	"pageturn/internal/store"
	"pageturn/internal/ui"
)

func main() {
	// Parse command line arguments
	var noSound bool
	var noResume bool
	flag.BoolVar(&noSound, "no-sound", false, "Disable sound cues")
	flag.BoolVar(&noResume, "no-resume", false, "Start from the cover instead of the saved position")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: pageturn [flags] <book.txt>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	bookPath := flag.Arg(0)

	// Set up logging
	logFile, err := os.OpenFile("pageturn.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if noSound {
		cfg.Sound = false
	}
	if noResume {
		cfg.UISettings.ResumeLastPage = false
	}

	// Paginate the book
	loader := content.NewLoader()
	loader.PageWidth = cfg.PageWidth
	loader.PageLines = cfg.PageLines
	book, err := loader.LoadFile(bookPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Loaded %q: %d pages, %d chapters", book.Title, len(book.Pages), len(book.Chapters))

	// Reading positions, keyed by content hash so renames keep the place
	positions, err := store.New()
	if err != nil {
		log.Printf("Position store unavailable: %v", err)
		positions = nil
	}
	bookHash := ""
	if positions != nil {
		if bookHash, err = store.ComputeHash(bookPath); err != nil {
			log.Printf("Failed to hash book file: %v", err)
			positions = nil
		}
	}

	// Create UI model around the flip engine
	renderer := render.NewBookRenderer(book, 0, false)
	uiModel := ui.NewModel(cfg, bus, renderer, positions, bookHash)

	// Create Bubble Tea program with mouse support for the drag gesture
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventIndexChanged,
		eventbus.EventChapterUpdated,
		eventbus.EventBookOpened,
		eventbus.EventBookClosed,
		eventbus.EventFlipFailed,
		eventbus.EventSoundCue,
	} {
		bus.Subscribe(t, forward)
	}
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Reader exited normally")

	close(eventChan)
}
