package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"foodrun/appstate"
	"foodrun/client"
	"foodrun/config"
	"foodrun/ordercalc"
)

const usage = `usage: foodrun-cli [flags] <command>

commands:
  restaurants                     list restaurants and their menus
  order <restaurant> <food=qty>…  place an order
  orders                          list your orders and deliver any that arrived
  spend                           show the last seven days of spending
`

func main() {
	config.LoadEnv()

	gateway := flag.String("gateway", config.GetEnv("GATEWAY_URL", "http://localhost:8080"), "api-gateway base URL")
	email := flag.String("email", config.GetEnv("FOODRUN_EMAIL", ""), "account email")
	password := flag.String("password", config.GetEnv("FOODRUN_PASSWORD", ""), "account password")
	addressName := flag.String("address", "", "delivery address label for order")
	lat := flag.String("lat", "", "delivery latitude for order")
	lng := flag.String("lng", "", "delivery longitude for order")
	notes := flag.String("notes", "", "special instructions for order")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := client.New(*gateway, nil)
	state := appstate.New(appstate.Config{
		Accounts: api,
		Storage:  api,
		Geocoder: client.NewGeocoder(config.GetEnv("GEOCODER_URL", client.DefaultGeocoderURL), nil),
	})
	if err := state.Start(ctx); err != nil {
		log.Fatal("Failed to start:", err)
	}

	if *email != "" {
		if err := state.SignIn(ctx, *email, *password); err != nil {
			log.Fatal(state.View().ErrorMessage)
		}
		if _, err := await(ctx, state, func(v appstate.View) bool { return v.Auth == appstate.Authenticated }); err != nil {
			log.Fatal("Failed to load account:", err)
		}
	}

	var err error
	switch flag.Arg(0) {
	case "restaurants":
		err = listRestaurants(ctx, state)
	case "order":
		var destination *ordercalc.Coordinates
		if *lat != "" || *lng != "" {
			destination, err = ordercalc.ParseCoordinates([]string{*lat, *lng})
			if err != nil {
				log.Fatal(err)
			}
		}
		err = placeOrder(ctx, state, flag.Args()[1:], appstate.OrderDetails{
			Destination:         destination,
			AddressName:         *addressName,
			SpecialInstructions: *notes,
		})
	case "orders":
		err = listOrders(ctx, state)
	case "spend":
		err = showSpending(ctx, state)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func await(ctx context.Context, state *appstate.State, cond func(v appstate.View) bool) (appstate.View, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	for v := range state.Subscribe(ctx) {
		if cond(v) {
			return v, nil
		}
	}
	return appstate.View{}, ctx.Err()
}

func catalogLoaded(v appstate.View) bool {
	return v.Restaurants != nil && v.Foods != nil
}

func listRestaurants(ctx context.Context, state *appstate.State) error {
	v, err := await(ctx, state, catalogLoaded)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, r := range v.Restaurants {
		state.SelectRestaurant(r)
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, r.Address)
		for _, f := range state.View().RestaurantFoods {
			fmt.Fprintf(w, "\t%s\t%s\t$%.2f\n", f.ID, f.Name, f.Cost)
		}
	}
	return nil
}

func placeOrder(ctx context.Context, state *appstate.State, args []string, details appstate.OrderDetails) error {
	if len(args) < 1 {
		return errors.New("order needs a restaurant id")
	}
	v, err := await(ctx, state, catalogLoaded)
	if err != nil {
		return err
	}

	var restaurantFound bool
	for _, r := range v.Restaurants {
		if r.ID == args[0] {
			state.SelectRestaurant(r)
			restaurantFound = true
		}
	}
	if !restaurantFound {
		return fmt.Errorf("unknown restaurant %q", args[0])
	}

	for _, item := range args[1:] {
		foodID, qty, ok := strings.Cut(item, "=")
		if !ok {
			qty = "1"
		}
		quantity, err := strconv.Atoi(qty)
		if err != nil {
			return fmt.Errorf("bad quantity in %q", item)
		}
		state.UpdateFoodOrder(foodID, quantity)
	}

	placed, err := state.ConfirmOrder(ctx, details)
	if err != nil {
		return errors.New(appstate.OrderMessage(err))
	}
	fmt.Printf("Order %s placed: $%.2f, arriving %s\n", placed.ID, placed.Cost, placed.TravelTime.Local().Format(time.Kitchen))
	return nil
}

func listOrders(ctx context.Context, state *appstate.State) error {
	if err := state.RefreshOrders(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, o := range state.View().FilteredOrders {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\t%s\n",
			o.ID, o.OrderDate.Local().Format("2006-01-02 15:04"), o.Cost, ordercalc.StatusOf(o), o.AddressName)
	}
	return nil
}

func showSpending(ctx context.Context, state *appstate.State) error {
	if err := state.UpdateWeeklySpendingData(ctx); err != nil {
		return err
	}
	days := ordercalc.LastWeek(time.Now())
	for i, total := range state.View().WeeklySpending {
		fmt.Printf("%s  $%.2f\n", days[i].Format("Mon 02 Jan"), total)
	}
	return nil
}
