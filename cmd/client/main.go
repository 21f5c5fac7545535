package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "cinema-lab/proto/cinema"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CINEMA_SERVER_ADDR,default=localhost:50051"`
	Colours       bool   `env:"CINEMA_CLIENT_COLOURS,default=true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run drives an interactive session against the cinema server:
// films, screenings <filmId>, subscribe <filmIds> <venueIds>, exit.
func run() (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(config.ServerAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer conn.Close()

	client := pb.NewCinemaClient(conn)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return exitOK, nil
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "films":
			response, err := client.GetFilms(ctx, &pb.Empty{})
			if err != nil {
				fmt.Println(err)
				continue
			}
			renderFilms(config, response.Films)
		case "screenings":
			if len(fields) < 2 {
				fmt.Println("usage: screenings <filmId>")
				continue
			}
			filmID, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			response, err := client.GetFilmScreenings(ctx,
				&pb.GetFilmScreeningsRequest{FilmId: int32(filmID)})
			if err != nil {
				fmt.Println(err)
				continue
			}
			renderScreenings(config, "screenings", response.Screenings)
		case "subscribe":
			if len(fields) < 3 {
				fmt.Println("usage: subscribe <filmIds|-> <venueIds|-> (comma separated)")
				continue
			}
			if err := subscribe(ctx, config, client, fields[1], fields[2]); err != nil {
				fmt.Println(err)
			}
		case "exit":
			fmt.Println("exit command, goodbye! =)")
			return exitOK, nil
		default:
			fmt.Printf("Unknown command %q\n", fields[0])
		}
	}
}

// subscribe streams delta batches until the stream ends or Ctrl+C.
func subscribe(ctx context.Context, config Config, client pb.CinemaClient, filmArg, venueArg string) error {
	filmIDs, err := parseIDs(filmArg)
	if err != nil {
		return err
	}
	venueIDs, err := parseIDs(venueArg)
	if err != nil {
		return err
	}

	stream, err := client.SubscribeScreenings(ctx, &pb.SubscribeScreeningsRequest{
		FilmIds:  filmIDs,
		VenueIds: venueIDs,
	})
	if err != nil {
		return err
	}

	for {
		response, err := stream.Recv()
		if err == io.EOF || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		renderScreenings(config, fmt.Sprintf("batch at %s", time.Now().Format(time.TimeOnly)),
			response.Screenings)
	}
}

func parseIDs(arg string) ([]int32, error) {
	if arg == "-" {
		return nil, nil
	}
	var ids []int32
	for _, raw := range strings.Split(arg, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", raw, err)
		}
		ids = append(ids, int32(id))
	}
	return ids, nil
}

func renderFilms(config Config, films []*pb.Film) {
	printHeader(config, fmt.Sprintf("  ====== %d film(s) ======", len(films)))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Duration"})
	for _, film := range films {
		table.Append([]string{
			strconv.Itoa(int(film.Id)),
			film.Name,
			(time.Duration(film.DurationSec) * time.Second).String(),
		})
	}
	table.Render()
}

func renderScreenings(config Config, title string, screenings []*pb.Screening) {
	printHeader(config, fmt.Sprintf("  ====== %s: %d screening(s) ======", title, len(screenings)))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Film", "Venue", "Start", "Seats"})
	for _, screening := range screenings {
		table.Append([]string{
			strconv.Itoa(int(screening.Id)),
			strconv.Itoa(int(screening.FilmId)),
			strconv.Itoa(int(screening.Venue.GetId())),
			screening.StartDate.AsTime().Format(time.RFC3339),
			fmt.Sprintf("%d/%d purchased",
				screening.Venue.GetPurchasedSeatsCount(),
				screening.Venue.GetMaximumSeatsCount()),
		})
	}
	table.Render()
}

func printHeader(config Config, header string) {
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}
