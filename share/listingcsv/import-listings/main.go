package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/junianwoo/fyd-sub001/share/listingcsv"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("fyd")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var csvFile string
	flag.StringVar(&csvFile, "f", "listings.csv", "path of the listing csv file")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	count, err := listingcsv.Import(client, viper.GetString("mongo.database"), csvFile)
	if err != nil {
		panic(err)
	}

	fmt.Printf("imported %d listings\n", count)
}
