// Command gescar is a small terminal front end for the dealership
// API, built on the same session and client packages the application
// uses. The API base URL comes from GESCAR_API_URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gescar/dealership-system/pkg/auth"
	"github.com/gescar/dealership-system/pkg/client"
	"github.com/gescar/dealership-system/pkg/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gescar:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	store, err := session.DefaultStore()
	if err != nil {
		return err
	}

	var authCtx *auth.Context
	api := client.New("",
		client.WithSessionStore(store),
		client.WithAuthRejectedHook(func() {
			if authCtx != nil {
				authCtx.Invalidate()
			}
			fmt.Fprintln(os.Stderr, "session rejected by the server; please log in again")
		}),
	)

	authCtx = auth.NewContext(api, store)
	authCtx.Init()

	ctx := context.Background()

	switch cmd, rest := args[0], args[1:]; cmd {
	case "login":
		return runLogin(ctx, authCtx, rest)
	case "register":
		return runRegister(ctx, authCtx, rest)
	case "logout":
		authCtx.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		return runWhoami(authCtx)
	case "vehicles":
		return runVehicles(ctx, api, rest)
	case "summary":
		return runSummary(ctx, api)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: gescar <command> [flags]

commands:
  login     -email -password
  register  -name -email -password -role
  logout
  whoami
  vehicles  [-status] [-year] [-brand] [-page] [-limit]
  summary`)
}

func runLogin(ctx context.Context, authCtx *auth.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login: -email and -password are required")
	}

	user, err := authCtx.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s); landing: %s\n", user.Name, user.Role, auth.LandingPath(user.Role))
	return nil
}

func runRegister(ctx context.Context, authCtx *auth.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "client", "account role (dealer or client)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("register: -name, -email and -password are required")
	}

	user, err := authCtx.Register(ctx, *name, *email, *password, *role)
	if err != nil {
		return err
	}
	fmt.Printf("registered %s (%s); landing: %s\n", user.Name, user.Role, auth.LandingPath(user.Role))
	return nil
}

func runWhoami(authCtx *auth.Context) error {
	user := authCtx.User()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func runVehicles(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("vehicles", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status")
	year := fs.Int("year", 0, "filter by year")
	brand := fs.String("brand", "", "filter by brand")
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := api.ListVehicles(ctx, client.VehicleFilter{
		Status: *status,
		Year:   *year,
		Brand:  *brand,
		Page:   *page,
		Limit:  *limit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBRAND\tMODEL\tYEAR\tPRICE\tSTATUS")
	for _, v := range list.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\n", v.ID, v.Brand, v.Model, v.Year, v.Price, v.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d/%d (%d total)\n", list.Pagination.Page, list.Pagination.TotalPages, list.Pagination.Total)
	return nil
}

func runSummary(ctx context.Context, api *client.Client) error {
	summary, err := api.GetDashboardSummary(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("in stock:            %d\n", summary.VehiclesInStock)
	fmt.Printf("sold:                %d\n", summary.VehiclesSold)
	fmt.Printf("in repair:           %d\n", summary.VehiclesInRepair)
	fmt.Printf("sales:               %d (R$ %.2f)\n", summary.SalesCount, summary.SalesTotal)
	fmt.Printf("repairs in progress: %d\n", summary.RepairsInProgress)
	fmt.Printf("repairs completed:   %d\n", summary.RepairsCompleted)
	fmt.Printf("repair cost total:   R$ %.2f\n", summary.RepairsTotalCost)
	return nil
}
