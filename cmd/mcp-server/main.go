// The mcp-server command exposes flight schedule lookups and reference
// data over the Model Context Protocol on stdio.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gilby125/trip-planner-api/config"
	"github.com/gilby125/trip-planner-api/pkg/buildinfo"
	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	session := schedule.NewSession(cfg.AmadeusConfig)
	index := ref.NewIndex()

	s := server.NewMCPServer(
		"trip-planner-mcp",
		buildinfo.Version,
		server.WithLogging(),
	)

	lookupTool := mcp.NewTool("lookup_flight",
		mcp.WithDescription("Look up a flight's schedule by flight number and date"),
		mcp.WithString("flight_number",
			mcp.Description("Combined flight number, carrier code plus digits (e.g., AA123)"),
		),
		mcp.WithString("date",
			mcp.Description("Scheduled departure date (YYYY-MM-DD)"),
		),
	)

	s.AddTool(lookupTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("Invalid arguments format"), nil
		}

		flightNumber, _ := argsMap["flight_number"].(string)
		date, _ := argsMap["date"].(string)
		if flightNumber == "" || date == "" {
			return mcp.NewToolResultError("flight_number and date are required"), nil
		}

		candidates, err := session.Lookup(ctx, flightNumber, date)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Lookup failed: %v", err)), nil
		}

		result := schedule.Disambiguate(candidates)
		response := map[string]interface{}{"outcome": result.Outcome}
		switch result.Outcome {
		case schedule.OutcomeSelected:
			sel, err := schedule.Select(*result.Selected, index)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Unusable schedule data: %v", err)), nil
			}
			response["selection"] = sel
		case schedule.OutcomeNeedsChoice:
			selections := make([]schedule.Selection, 0, len(result.Candidates))
			for _, c := range result.Candidates {
				if sel, err := schedule.Select(c, index); err == nil {
					selections = append(selections, sel)
				}
			}
			response["candidates"] = selections
		}

		jsonBytes, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error marshaling response: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	airportTool := mcp.NewTool("airport_info",
		mcp.WithDescription("Resolve an IATA airport code to its name, city, and country"),
		mcp.WithString("code",
			mcp.Description("IATA airport code (e.g., SFO, LHR)"),
		),
	)

	s.AddTool(airportTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("Invalid arguments format"), nil
		}

		code, _ := argsMap["code"].(string)
		airport, ok := index.Airport(code)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown airport code: %s", code)), nil
		}

		jsonBytes, err := json.MarshalIndent(airport, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error marshaling response: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	airlineTool := mcp.NewTool("airline_info",
		mcp.WithDescription("Resolve an IATA airline code to its name and logo URL"),
		mcp.WithString("code",
			mcp.Description("IATA airline code (e.g., AA, BA)"),
		),
	)

	s.AddTool(airlineTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("Invalid arguments format"), nil
		}

		code, _ := argsMap["code"].(string)
		airline, ok := index.Airline(code)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown airline code: %s", code)), nil
		}

		jsonBytes, err := json.MarshalIndent(airline, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error marshaling response: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
	}
}
