package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Tabs provisioned in every organization spreadsheet, one per
// submission type.
var defaultTabs = []string{"Leave Requests", "Time Clock", "Overtime"}

type Client struct {
	sheets *sheetsapi.Service
	drive  *drive.Service
}

// NewClient builds a Sheets+Drive client from service-account JSON
// credentials. Parsing the key up front surfaces a malformed key at
// boot instead of on the first append.
func NewClient(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	credentials, err := google.CredentialsFromJSON(ctx, credentialsJSON,
		sheetsapi.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	sheetsService, err := sheetsapi.NewService(ctx, option.WithCredentials(credentials))
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithCredentials(credentials))
	if err != nil {
		return nil, fmt.Errorf("init drive service: %w", err)
	}

	return &Client{sheets: sheetsService, drive: driveService}, nil
}

func (client *Client) AppendRow(ctx context.Context, spreadsheetID string, tab string, values []any) error {
	valueRange := &sheetsapi.ValueRange{Values: [][]any{values}}
	_, err := client.sheets.Spreadsheets.Values.
		Append(spreadsheetID, fmt.Sprintf("'%s'!A1", tab), valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to %s: %w", tab, err)
	}
	return nil
}

// SpreadsheetTitle verifies the spreadsheet exists and is readable with
// the configured credentials.
func (client *Client) SpreadsheetTitle(ctx context.Context, spreadsheetID string) (string, error) {
	spreadsheet, err := client.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("get spreadsheet: %w", err)
	}
	return spreadsheet.Properties.Title, nil
}

// CreateSpreadsheet provisions a spreadsheet with the standard tabs and
// grants the given address write access, since the file is owned by the
// service account.
func (client *Client) CreateSpreadsheet(ctx context.Context, title string, shareWith string) (string, error) {
	tabSheets := make([]*sheetsapi.Sheet, 0, len(defaultTabs))
	for _, tab := range defaultTabs {
		tabSheets = append(tabSheets, &sheetsapi.Sheet{
			Properties: &sheetsapi.SheetProperties{Title: tab},
		})
	}

	spreadsheet, err := client.sheets.Spreadsheets.Create(&sheetsapi.Spreadsheet{
		Properties: &sheetsapi.SpreadsheetProperties{Title: title},
		Sheets:     tabSheets,
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create spreadsheet: %w", err)
	}

	if shareWith != "" {
		_, err = client.drive.Permissions.Create(spreadsheet.SpreadsheetId, &drive.Permission{
			Type:         "user",
			Role:         "writer",
			EmailAddress: shareWith,
		}).SendNotificationEmail(false).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("share spreadsheet: %w", err)
		}
	}

	return spreadsheet.SpreadsheetId, nil
}
