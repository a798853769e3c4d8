// Package shopsearch embeds the shopsearch smart-search engine in a Go program.
//
// The client reads the product catalog either from a JSON file or from
// Redis/Valkey, and answers free-text queries with a ranked, explained
// result list.
//
//	client, _ := shopsearch.New(ctx, shopsearch.WithCatalogFile("data/products.json"))
//	defer client.Close()
//
//	res, _ := client.Search(ctx, "running shoes under $100 with good reviews")
//	for _, hit := range res.Hits {
//	    fmt.Println(hit.Product.Title, hit.Score, hit.MatchedTerms)
//	}
//
// Catalogs kept in Redis or Valkey are loaded with Import:
//
//	client, _ := shopsearch.New(ctx, shopsearch.WithValkey("localhost:6379", ""))
//	_ = client.Import(ctx, products)
package shopsearch
