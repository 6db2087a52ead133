package agent

import (
	"context"
	"fmt"
	"strings"

	monitor "github.com/Rupesh905/ETF-Monitor"
	"github.com/Rupesh905/ETF-Monitor/docs"
	"github.com/Rupesh905/ETF-Monitor/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user monitors the daily composition of a single ETF. They are here primarily to understand
			what changed in the fund: positions that entered or left, and weights that moved.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. Check the archive first to know which days are available.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns an expert that grounds answers about the fund's
// holdings in a web search: company news, sector moves, index events.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert financial analyst,
		very well aware of financial products and institutions,
		and of the latest news about funds and companies.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial analyst. You can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			When the user asks why a position entered or left an ETF, or why its weight moved,
			look for recent news about that company and relate them to the question.
				`}}},
		},
	}
}

// NewArchivist returns an expert that reads the local snapshot archive.
func NewArchivist(store *monitor.Store, fund string) *Expert {
	lib := []Function{
		archiveDatesFunc(store),
		holdingsFunc(store),
		changesFunc(store, fund),
	}

	return &Expert{
		Name: "Archivist",
		Description: `This is the Archivist. It is in charge of reading the local archive of
		daily fund snapshots and change reports.
		It can list the archived days, detail the fund's composition on any archived day,
		and compute what changed between an archived day and the one before it.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the archivist of a daily ETF holdings archive.
				You know how to use the Tools to extract relevant information about the fund:
				  - the list of archived days
				  - the full composition of the fund on a given day
				  - the changes of a given day against the day before it
				You are part of a team of experts; pardon their approximative language and
				figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// failure builds the error response of a function call.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// success builds the output response of a function call.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func archiveDatesFunc(store *monitor.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ArchiveDates",
			Description: `ArchiveDates lists the days with an archived snapshot, oldest first.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One archived date per line, in YYYY-MM-DD format, oldest first.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			dates, err := store.Dates()
			if err != nil {
				return failure(id, "ArchiveDates", err)
			}
			var b strings.Builder
			for _, d := range dates {
				fmt.Fprintln(&b, d)
			}
			return success(id, "ArchiveDates", b.String())
		},
	}
}

func holdingsFunc(store *monitor.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Holdings",
			Description: `Holdings details the full composition of the fund on a given archived day:
			one line per position with its ticker, name and weight.`,
			Parameters: dateParameter("The archived day to detail. The most recent archived day is the default."),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the fund's positions with ticker, name and weight.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			snapshot, err := loadSnapshot(store, args)
			if err != nil {
				return failure(id, "Holdings", err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Holdings on %s (%d positions)\n\n", snapshot.Date, snapshot.TotalCount)
			b.WriteString("| Ticker | Name | Weight |\n")
			b.WriteString("|:---|:---|---:|\n")
			for _, h := range snapshot.Holdings {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", h.Ticker, h.Name, h.Weight)
			}
			return success(id, "Holdings", b.String())
		},
	}
}

func changesFunc(store *monitor.Store, fund string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Changes",
			Description: `Changes computes what changed on a given archived day against the archived
			day just before it: new positions, removed positions, and significant weight moves.`,
			Parameters: dateParameter("The archived day to report on. The most recent archived day is the default."),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted change report for that day.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			snapshot, err := loadSnapshot(store, args)
			if err != nil {
				return failure(id, "Changes", err)
			}
			previous, err := store.LoadBefore(snapshot.Date)
			if err != nil {
				previous = nil
			}
			return success(id, "Changes", renderer.ComparisonMarkdown(fund, monitor.Compare(snapshot, previous)))
		},
	}
}

func dateParameter(description string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date": {
				Type: genai.TypeString,
				Description: description + `
				It uses a flexible date format based on YYYY-MM-DD:

				` + must(docs.GetTopic("dates")),
			},
		},
	}
}

// loadSnapshot resolves the optional 'date' argument and loads that day's
// snapshot, defaulting to the most recent archived day.
func loadSnapshot(store *monitor.Store, args map[string]any) (*monitor.Snapshot, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		dates, err := store.Dates()
		if err != nil {
			return nil, err
		}
		if len(dates) == 0 {
			return nil, fmt.Errorf("the archive is empty")
		}
		return store.Load(dates[len(dates)-1])
	}

	sdate, ok := idate.(string)
	if !ok {
		return nil, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := monitor.ParseDate(sdate)
	if err != nil {
		return nil, fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s", sdate, must(docs.GetTopic("dates")))
	}
	return store.Load(date)
}
