package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/infra/localstore"
	"app/internal/infra/rest"
	"app/internal/state"

	"github.com/joho/godotenv"
)

func main() {
	//.envがあれば読む（無ければ環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}

	storeClient, err := rest.NewClient(cfg.StoreBaseURL, httpClient)
	if err != nil {
		panic(err)
	}
	authClient, err := rest.NewClient(cfg.AuthBaseURL, httpClient)
	if err != nil {
		panic(err)
	}

	//端末ローカルのセッション保存（sqlite）
	sessions, err := localstore.NewSessionRepository(cfg.SessionDBPath)
	if err != nil {
		panic(err)
	}

	//Store生成（時計とタイマーは実物）
	st := state.New(state.Deps{
		Products: rest.NewProductRepository(storeClient),
		Orders:   rest.NewOrderRepository(storeClient),
		Identity: rest.NewIdentityProvider(authClient, cfg.AuthAPIKey),
		Sessions: sessions,
	})

	ctx := context.Background()

	//起動時はまず保存セッションの復元を試す
	restored, err := st.Auth.Restore(ctx)
	if err != nil {
		panic(err)
	}
	if restored {
		sess := st.Auth.Session()
		fmt.Printf("restored session for user %s (expires %s)\n",
			sess.UserID, sess.ExpiresAt.Format(time.RFC3339))
	} else {
		fmt.Println("no stored session: sign in required")
	}

	if err := st.Products.FetchAll(ctx); err != nil {
		panic(err)
	}
	fmt.Printf("catalog: %d products (%d owned)\n",
		len(st.Products.All()), len(st.Products.Owned()))
}
