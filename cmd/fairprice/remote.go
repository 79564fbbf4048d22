package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	fairpricev1 "github.com/simaogato/fairprice-backend/internal/adapter/grpc/fairprice/v1"
)

var (
	serverAddr = flag.String("addr", envOr("FAIRPRICE_ADDR", "localhost:8080"), "address of the fairprice server")
	apiToken   = flag.String("token", envOr("FAIRPRICE_TOKEN", "dev-token"), "API token sent in the authorization metadata")
	timeout    = flag.Duration("timeout", 10*time.Second, "deadline of each remote call")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// remote is an open connection to the server
type remote struct {
	conn   *grpc.ClientConn
	client fairpricev1.FairPriceServiceClient
}

func dial() (*remote, error) {
	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", *serverAddr, err)
	}
	logger.Debug().Str("addr", *serverAddr).Msg("connected")
	return &remote{conn: conn, client: fairpricev1.NewFairPriceServiceClient(conn)}, nil
}

func (r *remote) Close() error {
	return r.conn.Close()
}

// callContext returns an authenticated context bounded by -timeout
func callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", *apiToken)
	return context.WithTimeout(ctx, *timeout)
}

// resolveFolder accepts a folder ID or a folder name
func (r *remote) resolveFolder(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	if _, err := uuid.Parse(ref); err == nil {
		return ref, nil
	}

	resp, err := r.client.ListFolders(ctx, &fairpricev1.ListFoldersRequest{})
	if err != nil {
		return "", err
	}
	for _, f := range resp.Folders {
		if strings.EqualFold(f.Name, ref) {
			return f.Id, nil
		}
	}
	return "", fmt.Errorf("folder %q not found", ref)
}

// remoteCommand runs fn against an open connection and reports errors
func remoteCommand(ctx context.Context, fn func(context.Context, *remote) error) subcommands.ExitStatus {
	r, err := dial()
	if err != nil {
		logger.Error().Err(err).Msg("connection failed")
		return subcommands.ExitFailure
	}
	defer r.Close()

	ctx, cancel := callContext(ctx)
	defer cancel()

	if err := fn(ctx, r); err != nil {
		logger.Error().Err(err).Msg("request failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func formatAmount(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

// saveCmd stores an analysis on the server
type saveCmd struct {
	inputFlags
	notes  string
	folder string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "compute and save an analysis on the server" }
func (*saveCmd) Usage() string {
	return `fairprice save -ticker T [inputs as for compute] [-notes TEXT] [-folder NAME|ID]

  The server recomputes the valuation and stores the inputs, the result and the notes.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.notes, "notes", "", "free-text notes")
	f.StringVar(&c.folder, "folder", "", "folder name or ID")
}

func (c *saveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return remoteCommand(ctx, func(ctx context.Context, r *remote) error {
		folderID, err := r.resolveFolder(ctx, c.folder)
		if err != nil {
			return err
		}

		resp, err := r.client.SaveAnalysis(ctx, &fairpricev1.SaveAnalysisRequest{
			Input:    in,
			Notes:    c.notes,
			FolderId: folderID,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Saved %s: fair buy price %s (id %s)\n",
			resp.Analysis.Ticker, formatAmount(resp.Analysis.Result.FinalBuyPrice), resp.Analysis.Id)
		return nil
	})
}

// listCmd lists saved analyses
type listCmd struct {
	folder  string
	unfiled bool
	query   string
	sortBy  string
	limit   int
	offset  int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list saved analyses" }
func (*listCmd) Usage() string {
	return `fairprice list [-folder NAME|ID | -unfiled] [-q TEXT] [-sort created_at|ticker|final_price] [-limit N] [-offset N]
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.folder, "folder", "", "only analyses in this folder (name or ID)")
	f.BoolVar(&c.unfiled, "unfiled", false, "only analyses without a folder")
	f.StringVar(&c.query, "q", "", "ticker contains this text")
	f.StringVar(&c.sortBy, "sort", "created_at", "sort order: created_at, ticker or final_price")
	f.IntVar(&c.limit, "limit", 50, "maximum number of analyses, 0 for all")
	f.IntVar(&c.offset, "offset", 0, "number of analyses to skip")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return remoteCommand(ctx, func(ctx context.Context, r *remote) error {
		folderID, err := r.resolveFolder(ctx, c.folder)
		if err != nil {
			return err
		}

		resp, err := r.client.ListAnalyses(ctx, &fairpricev1.ListAnalysesRequest{
			FolderId:    folderID,
			Unfiled:     c.unfiled,
			TickerQuery: c.query,
			SortBy:      c.sortBy,
			Limit:       int32(c.limit),
			Offset:      int32(c.offset),
		})
		if err != nil {
			return err
		}

		printMarkdown(analysesMarkdown(resp))
		return nil
	})
}

func analysesMarkdown(resp *fairpricev1.ListAnalysesResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Analyses\n\nShowing %d of %d.\n\n", len(resp.Analyses), resp.TotalCount)
	if len(resp.Analyses) == 0 {
		return b.String()
	}

	b.WriteString("| Ticker | Date | Fair buy price | Notes | ID |\n")
	b.WriteString("|---|---|---:|---|---|\n")
	for _, a := range resp.Analyses {
		notes := strings.Join(strings.Fields(a.Notes), " ")
		if runes := []rune(notes); len(runes) > 40 {
			notes = string(runes[:40]) + "..."
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			a.Ticker, a.CreatedAt.AsTime().Format("2006-01-02"), formatAmount(a.Result.FinalBuyPrice),
			strings.ReplaceAll(notes, "|", `\|`), a.Id)
	}
	return b.String()
}

// foldersCmd lists folders with their analysis counts
type foldersCmd struct{}

func (*foldersCmd) Name() string             { return "folders" }
func (*foldersCmd) Synopsis() string         { return "list folders" }
func (*foldersCmd) Usage() string            { return "fairprice folders\n" }
func (*foldersCmd) SetFlags(f *flag.FlagSet) {}

func (*foldersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return remoteCommand(ctx, func(ctx context.Context, r *remote) error {
		resp, err := r.client.ListFolders(ctx, &fairpricev1.ListFoldersRequest{})
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString("# Folders\n\n")
		if len(resp.Folders) == 0 {
			b.WriteString("_No folders._\n")
		} else {
			b.WriteString("| Name | Analyses | ID |\n|---|---:|---|\n")
			for _, folder := range resp.Folders {
				fmt.Fprintf(&b, "| %s | %d | %s |\n", folder.Name, folder.AnalysisCount, folder.Id)
			}
		}
		printMarkdown(b.String())
		return nil
	})
}

// mkfolderCmd creates a folder
type mkfolderCmd struct{}

func (*mkfolderCmd) Name() string             { return "mkfolder" }
func (*mkfolderCmd) Synopsis() string         { return "create a folder" }
func (*mkfolderCmd) Usage() string            { return "fairprice mkfolder NAME\n" }
func (*mkfolderCmd) SetFlags(f *flag.FlagSet) {}

func (*mkfolderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(os.Stderr, "Error: a folder name is required")
		return subcommands.ExitUsageError
	}

	return remoteCommand(ctx, func(ctx context.Context, r *remote) error {
		resp, err := r.client.CreateFolder(ctx, &fairpricev1.CreateFolderRequest{Name: name})
		if err != nil {
			return err
		}
		fmt.Printf("Created folder %q (id %s)\n", resp.Folder.Name, resp.Folder.Id)
		return nil
	})
}

// exportCmd exports a folder as Markdown or a printable HTML page
type exportCmd struct {
	folder string
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a folder's analyses as Markdown or HTML" }
func (*exportCmd) Usage() string {
	return `fairprice export [-folder NAME|ID] [-format markdown|html] [-o FILE]

  Without -folder, exports the analyses that are not in any folder.
  Without -o, Markdown is rendered to the terminal and HTML printed as is.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.folder, "folder", "", "folder name or ID")
	f.StringVar(&c.format, "format", "markdown", "markdown or html")
	f.StringVar(&c.output, "o", "", "write to this file; \"-\" uses the server's file name")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return remoteCommand(ctx, func(ctx context.Context, r *remote) error {
		folderID, err := r.resolveFolder(ctx, c.folder)
		if err != nil {
			return err
		}

		resp, err := r.client.ExportFolder(ctx, &fairpricev1.ExportFolderRequest{
			FolderId: folderID,
			Format:   c.format,
		})
		if err != nil {
			return err
		}

		switch {
		case c.output == "" && strings.HasPrefix(resp.ContentType, "text/markdown"):
			printMarkdown(string(resp.Body))
		case c.output == "":
			os.Stdout.Write(resp.Body)
		default:
			path := c.output
			if path == "-" {
				path = resp.Filename
			}
			if err := os.WriteFile(path, resp.Body, 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	})
}
