package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/catalog"
	"github.com/ivlev/patternviz/internal/config"
	"github.com/ivlev/patternviz/internal/engine"
	"github.com/ivlev/patternviz/internal/system"
	"github.com/ivlev/patternviz/internal/ui"
	"github.com/ivlev/patternviz/internal/video"
)

var buildVersion = "dev"

func main() {
	configPtr := flag.String("config", "", "Путь к config.yaml (по умолчанию: каталог настроек пользователя)")
	exportPtr := flag.String("export", "", "Записать анимации в файл: .gif, .mp4 или папка для PNG")
	posterPtr := flag.String("poster", "", "Сохранить постер паттерна в PNG")
	patternsPtr := flag.String("patterns", "", "Паттерны через запятую (по умолчанию: все)")
	framesPtr := flag.Int("frames", 0, "Кадров на паттерн")
	widthPtr := flag.Int("width", 0, "Ширина")
	heightPtr := flag.Int("height", 0, "Высота")
	fpsPtr := flag.Int("fps", 0, "FPS")
	workersPtr := flag.Int("workers", 0, "Потоки")
	qualityPtr := flag.Int("quality", 0, "Качество видео (x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	assetsPtr := flag.String("assets", "", "Папка со спрайтами вместо встроенных")
	catalogPtr := flag.String("catalog", "", "YAML-каталог паттернов вместо встроенного")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности")
	logPtr := flag.String("log", "", "Файл журнала для интерактивного режима")

	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("[-] Ошибка конфигурации: %v", err)
	}
	cfg.BuildVersion = buildVersion

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frames":
			cfg.Export.Frames = *framesPtr
		case "width":
			cfg.Export.Width = *widthPtr
		case "height":
			cfg.Export.Height = *heightPtr
		case "fps":
			cfg.FPS = *fpsPtr
		case "workers":
			cfg.Export.Workers = *workersPtr
		case "quality":
			cfg.Export.Quality = *qualityPtr
		case "assets":
			cfg.AssetsDir = *assetsPtr
		case "catalog":
			cfg.CatalogPath = *catalogPtr
		case "stats":
			cfg.ShowStats = *statsPtr
		case "log":
			cfg.LogFile = *logPtr
		}
	})
	if *patternsPtr != "" {
		cfg.Export.Patterns = strings.Split(*patternsPtr, ",")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Ошибка конфигурации: %v", err)
	}

	loader := assets.Default()
	if cfg.AssetsDir != "" {
		loader, err = assets.Dir(cfg.AssetsDir)
		if err != nil {
			log.Fatalf("[-] Ошибка ресурсов: %v", err)
		}
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("[-] Ошибка каталога: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *exportPtr != "":
		cfg.Export.Output = *exportPtr
		runExport(ctx, &cfg, loader)
	case *posterPtr != "":
		runPoster(ctx, &cfg, loader, cat, *posterPtr)
	default:
		runShell(cfg, cat, loader)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.Read(path)
}

func runExport(ctx context.Context, cfg *config.Config, loader assets.Loader) {
	if f, err := video.FormatFor(cfg.Export.Output); err == nil && f == video.FormatFFmpeg && !system.HasFFmpeg() {
		log.Fatalf("[-] Ошибка: ffmpeg не найден в PATH")
	}

	project := engine.NewProject(cfg, loader)
	results, err := project.Run(ctx)
	if err != nil {
		log.Fatalf("[-] Ошибка экспорта: %v", err)
	}
	for _, r := range results {
		fmt.Printf("[+++] Успех! %s: %s (%d кадров)\n", r.Pattern, r.Path, r.Frames)
	}
}

func runPoster(ctx context.Context, cfg *config.Config, loader assets.Loader, cat *catalog.Catalog, path string) {
	name := "singleton"
	if len(cfg.Export.Patterns) > 0 {
		name = cfg.Export.Patterns[0]
	}
	p, err := cat.Get(strings.ReplaceAll(name, "_", " "))
	if err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}

	project := engine.NewProject(cfg, loader)
	if err := project.SavePoster(ctx, p, path); err != nil {
		log.Fatalf("[-] Ошибка постера: %v", err)
	}
}

func runShell(cfg config.Config, cat *catalog.Catalog, loader assets.Loader) {
	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "patternviz")
		if err != nil {
			log.Fatalf("[-] Ошибка журнала: %v", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	p := tea.NewProgram(
		ui.NewModel(cfg, cat, loader, logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}

	if cfg.ShowStats {
		if st, err := system.CurrentStats(); err == nil {
			fmt.Printf("[*] %s\n", st)
		}
	}
}
