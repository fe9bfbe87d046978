package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/core/document"
	"github.com/example/factogo/internal/ports/primary"
	"github.com/example/factogo/internal/render"
	"github.com/example/factogo/internal/wire"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage invoices, quotes, and delivery notes",
	Long:  "Create, list, show, update, delete, convert, and render business documents",
}

var documentCreateCmd = &cobra.Command{
	Use:   "create [client-name]",
	Short: "Create a new document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType, err := typeFlag(cmd)
		if err != nil {
			return err
		}
		storeID, _ := cmd.Flags().GetInt64("store")
		date, _ := cmd.Flags().GetString("date")
		rawItems, _ := cmd.Flags().GetStringArray("item")
		discountType, _ := cmd.Flags().GetString("discount-type")
		discountValue, _ := cmd.Flags().GetFloat64("discount-value")
		orderRef, _ := cmd.Flags().GetString("order-reference")
		paymentMethod, _ := cmd.Flags().GetString("payment-method")

		items, err := parseItems(rawItems)
		if err != nil {
			return err
		}

		doc, err := wire.DocumentService().CreateDocument(ctx, primary.CreateDocumentRequest{
			StoreID:        storeID,
			Type:           docType,
			ClientName:     args[0],
			Date:           date,
			Items:          items,
			DiscountType:   discountType,
			DiscountValue:  discountValue,
			OrderReference: orderRef,
			PaymentMethod:  paymentMethod,
		})
		if err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}

		fmt.Printf("✓ Created %s %s (id %d)\n", doc.Type, color.New(color.FgHiGreen).Sprint(doc.DocumentNumber), doc.ID)
		fmt.Printf("  Client: %s\n", doc.ClientName)
		fmt.Printf("  Total:  %.2f\n", doc.Total)
		return nil
	},
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents for a store, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType, err := typeFlag(cmd)
		if err != nil {
			return err
		}
		storeID, _ := cmd.Flags().GetInt64("store")

		docs, err := wire.DocumentService().ListDocuments(ctx, docType, storeID)
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}

		if len(docs) == 0 {
			fmt.Println("No documents found.")
			return nil
		}

		fmt.Printf("Found %d document(s):\n\n", len(docs))
		for _, doc := range docs {
			printDocumentLine(doc)
		}
		return nil
	},
}

var documentShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a document in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType, err := typeFlag(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		doc, err := wire.DocumentService().GetDocument(ctx, docType, id)
		if err != nil {
			return fmt.Errorf("failed to get document: %w", err)
		}

		printDocument(doc)
		return nil
	},
}

var documentUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Overwrite a document's editable fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType, err := typeFlag(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		doc, err := wire.DocumentService().GetDocument(ctx, docType, id)
		if err != nil {
			return fmt.Errorf("failed to get document: %w", err)
		}

		// Start from the stored row so unset flags keep their values.
		req := primary.UpdateDocumentRequest{
			ID:             doc.ID,
			Type:           doc.Type,
			DocumentNumber: doc.DocumentNumber,
			ClientName:     doc.ClientName,
			Date:           doc.Date,
			Items:          doc.Items,
			DiscountType:   doc.DiscountType,
			DiscountValue:  doc.DiscountValue,
			Status:         doc.Status,
			OrderReference: doc.OrderReference,
			PaymentMethod:  doc.PaymentMethod,
		}

		if cmd.Flags().Changed("client") {
			req.ClientName, _ = cmd.Flags().GetString("client")
		}
		if cmd.Flags().Changed("date") {
			req.Date, _ = cmd.Flags().GetString("date")
		}
		if cmd.Flags().Changed("item") {
			rawItems, _ := cmd.Flags().GetStringArray("item")
			req.Items, err = parseItems(rawItems)
			if err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("discount-type") {
			req.DiscountType, _ = cmd.Flags().GetString("discount-type")
		}
		if cmd.Flags().Changed("discount-value") {
			req.DiscountValue, _ = cmd.Flags().GetFloat64("discount-value")
		}
		if cmd.Flags().Changed("order-reference") {
			req.OrderReference, _ = cmd.Flags().GetString("order-reference")
		}
		if cmd.Flags().Changed("payment-method") {
			req.PaymentMethod, _ = cmd.Flags().GetString("payment-method")
		}

		if err := wire.DocumentService().UpdateDocument(ctx, req); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}

		fmt.Printf("✓ Updated %s %s\n", docType, doc.DocumentNumber)
		return nil
	},
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType, err := typeFlag(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.DocumentService().DeleteDocument(ctx, docType, id); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}

		fmt.Printf("✓ Deleted %s %d\n", docType, id)
		return nil
	},
}

var documentConvertCmd = &cobra.Command{
	Use:   "convert [quote-id]",
	Short: "Convert a quote into an invoice or delivery note",
	Long:  "Creates the derived document and marks the quote Converted in one transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		quoteID, err := parseID(args[0])
		if err != nil {
			return err
		}
		target, _ := cmd.Flags().GetString("to")
		targetType, err := document.ParseType(target)
		if err != nil {
			return err
		}
		if targetType == document.Quote {
			return fmt.Errorf("cannot convert a quote into a quote")
		}

		quote, err := wire.DocumentService().GetDocument(ctx, document.Quote, quoteID)
		if err != nil {
			return fmt.Errorf("failed to get quote: %w", err)
		}
		if quote.Status == document.StatusConverted {
			return fmt.Errorf("quote %s is already converted", quote.DocumentNumber)
		}

		req := primary.CreateDocumentRequest{
			StoreID:         quote.StoreID,
			Type:            targetType,
			ClientName:      quote.ClientName,
			Items:           quote.Items,
			ConvertedFromID: quote.ID,
		}
		if targetType == document.Invoice {
			req.DiscountType = quote.DiscountType
			req.DiscountValue = quote.DiscountValue
		}

		doc, err := wire.DocumentService().CreateDocument(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to convert quote: %w", err)
		}

		fmt.Printf("✓ Converted quote %s into %s %s\n",
			quote.DocumentNumber, doc.Type, color.New(color.FgHiGreen).Sprint(doc.DocumentNumber))
		return nil
	},
}

var documentNextNumberCmd = &cobra.Command{
	Use:   "next-number",
	Short: "Preview the next document number without reserving it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType, err := typeFlag(cmd)
		if err != nil {
			return err
		}
		storeID, _ := cmd.Flags().GetInt64("store")

		number, err := wire.DocumentService().NextDocumentNumber(ctx, storeID, docType, time.Now())
		if err != nil {
			return fmt.Errorf("failed to compute next number: %w", err)
		}

		fmt.Println(number)
		return nil
	},
}

var documentRenderCmd = &cobra.Command{
	Use:   "render [id]",
	Short: "Render a document as HTML using the store's template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType, err := typeFlag(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		outPath, _ := cmd.Flags().GetString("output")

		doc, err := wire.DocumentService().GetDocument(ctx, docType, id)
		if err != nil {
			return fmt.Errorf("failed to get document: %w", err)
		}
		store, err := wire.StoreService().GetStore(ctx, doc.StoreID)
		if err != nil {
			return fmt.Errorf("failed to get store: %w", err)
		}
		tmpl, err := wire.TemplateService().GetTemplate(ctx, templateIDOrDefault(store))
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := render.HTML(out, tmpl, doc, store); err != nil {
			return fmt.Errorf("failed to render document: %w", err)
		}
		if outPath != "" {
			fmt.Printf("✓ Rendered %s %s to %s\n", doc.Type, doc.DocumentNumber, outPath)
		}
		return nil
	},
}

// templateIDOrDefault falls back to the first seeded template when the
// store has none assigned.
func templateIDOrDefault(store *primary.Store) int64 {
	if store.DocumentTemplateID != 0 {
		return store.DocumentTemplateID
	}
	return 1
}

func typeFlag(cmd *cobra.Command) (document.Type, error) {
	s, _ := cmd.Flags().GetString("type")
	return document.ParseType(s)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}

// parseItems turns repeated "description:quantity:unit-price" flags into
// line items. The unit price may be omitted for delivery notes.
func parseItems(raw []string) ([]document.LineItem, error) {
	items := make([]document.LineItem, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid item %q (want description:quantity[:unit-price])", r)
		}

		qty, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in item %q: %w", r, err)
		}

		item := document.LineItem{Description: parts[0], Quantity: qty}
		if len(parts) == 3 {
			item.UnitPrice, err = strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid unit price in item %q: %w", r, err)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func printDocumentLine(doc *primary.Document) {
	status := ""
	if doc.Status == document.StatusConverted {
		status = color.New(color.FgYellow).Sprint(" [converted]")
	}
	fmt.Printf("  %s  %-20s %10.2f%s\n",
		color.New(color.FgHiGreen).Sprint(doc.DocumentNumber), doc.ClientName, doc.Total, status)
}

func printDocument(doc *primary.Document) {
	fmt.Printf("%s %s (id %d)\n", doc.Type, color.New(color.FgHiGreen).Sprint(doc.DocumentNumber), doc.ID)
	fmt.Printf("  Store:  %d\n", doc.StoreID)
	fmt.Printf("  Client: %s\n", doc.ClientName)
	fmt.Printf("  Date:   %s\n", doc.Date)
	if doc.Status != "" {
		fmt.Printf("  Status: %s\n", doc.Status)
	}
	if doc.OrderReference != "" {
		fmt.Printf("  Order reference: %s\n", doc.OrderReference)
	}
	if doc.PaymentMethod != "" {
		fmt.Printf("  Payment method:  %s\n", doc.PaymentMethod)
	}
	if len(doc.Items) > 0 {
		fmt.Println("  Items:")
		for _, it := range doc.Items {
			fmt.Printf("    %-20s %8.2f x %8.2f\n", it.Description, it.Quantity, it.UnitPrice)
		}
	}
	if doc.DiscountType != "" {
		fmt.Printf("  Discount: %s %.2f\n", doc.DiscountType, doc.DiscountValue)
	}
	fmt.Printf("  Total:  %.2f\n", doc.Total)
}

func init() {
	// shared flags: every subcommand addresses a document type; most need a store
	for _, c := range []*cobra.Command{
		documentCreateCmd, documentListCmd, documentShowCmd, documentUpdateCmd,
		documentDeleteCmd, documentNextNumberCmd, documentRenderCmd,
	} {
		c.Flags().StringP("type", "t", "invoice", "Document type (invoice, quote, delivery_note)")
	}
	documentCreateCmd.Flags().Int64P("store", "s", 0, "Store ID")
	documentListCmd.Flags().Int64P("store", "s", 0, "Store ID")
	documentNextNumberCmd.Flags().Int64P("store", "s", 0, "Store ID")

	// document create flags
	documentCreateCmd.Flags().String("date", "", "Document date (defaults to today)")
	documentCreateCmd.Flags().StringArrayP("item", "i", nil, "Line item as description:quantity[:unit-price] (repeatable)")
	documentCreateCmd.Flags().String("discount-type", "", "Discount type (percentage, fixed)")
	documentCreateCmd.Flags().Float64("discount-value", 0, "Discount value")
	documentCreateCmd.Flags().String("order-reference", "", "Order reference (delivery notes)")
	documentCreateCmd.Flags().String("payment-method", "", "Payment method (delivery notes)")

	// document update flags
	documentUpdateCmd.Flags().String("client", "", "New client name")
	documentUpdateCmd.Flags().String("date", "", "New document date")
	documentUpdateCmd.Flags().StringArrayP("item", "i", nil, "Replacement line item (repeatable)")
	documentUpdateCmd.Flags().String("discount-type", "", "New discount type")
	documentUpdateCmd.Flags().Float64("discount-value", 0, "New discount value")
	documentUpdateCmd.Flags().String("order-reference", "", "New order reference")
	documentUpdateCmd.Flags().String("payment-method", "", "New payment method")

	// document convert flags
	documentConvertCmd.Flags().String("to", "invoice", "Target type (invoice, delivery_note)")

	// document render flags
	documentRenderCmd.Flags().StringP("output", "o", "", "Write HTML to this file instead of stdout")

	// Register subcommands
	documentCmd.AddCommand(documentCreateCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentUpdateCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentConvertCmd)
	documentCmd.AddCommand(documentNextNumberCmd)
	documentCmd.AddCommand(documentRenderCmd)
}

// DocumentCmd returns the document command
func DocumentCmd() *cobra.Command {
	return documentCmd
}
