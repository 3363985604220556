package server

import (
	"net/http"

	"github.com/nootlab/nootmint/internal/common"
	"github.com/nootlab/nootmint/internal/domain/mint"
	"github.com/nootlab/nootmint/internal/model"
	"github.com/nootlab/nootmint/pkg/enum"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

const mintPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Noot Token Mint</title>
</head>
<body>
<main id="mint" data-account="{{.Account}}">
<h1>Noot Token Mint</h1>
<p>Get your free or paid NOOT tokens here</p>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if not .Connected}}<p class="sign-in">Sign in with your wallet to mint NOOT tokens</p>{{end}}
{{if .Loading}}<p class="loading">Loading...</p>{{end}}
{{with .Free}}{{template "control" .}}{{end}}
{{template "control" .Paid}}
</main>
<script>
document.querySelectorAll("button[data-kind]").forEach(function (button) {
  button.addEventListener("click", function () {
    button.disabled = true;
    fetch("/api/mint/" + button.dataset.kind, {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({account: document.getElementById("mint").dataset.account})
    }).then(function () { window.location.reload(); });
  });
});
</script>
</body>
</html>
{{define "control"}}
<section class="mint-control" data-kind="{{.Kind}}">
<button data-kind="{{.Kind}}"{{if .Disabled}} disabled{{end}}>{{if .Pending}}Minting...{{else}}{{.Label}}{{end}}</button>
{{if .FeeLabel}}<p class="fee">Fee: {{.FeeLabel}}</p>{{end}}
{{with .Success}}<div class="success">
<h2>{{.Title}}</h2>
{{if .Reverted}}<p class="reverted">The transaction was reverted</p>{{end}}
<a href="{{.ExplorerURL}}" target="_blank" rel="noopener noreferrer">View on Explorer</a>
</div>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
</section>
{{end}}`

type pageControl struct {
	Kind string
	model.MintControl
}

type pageData struct {
	model.MintView
	Free  *pageControl
	Paid  pageControl
	Error string
}

func newPageData(view model.MintView) pageData {
	data := pageData{
		MintView: view,
		Paid:     pageControl{Kind: enum.ToString(mint.KindPaid), MintControl: view.PaidMint},
	}

	if view.FreeMint != nil {
		data.Free = &pageControl{Kind: enum.ToString(mint.KindFree), MintControl: *view.FreeMint}
	}

	return data
}

// page is the HTML mount point of the mint flow, rendered for the account in the query string.
func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	ctx := xcontext.WithLogger(r.Context(), xcontext.Logger(s.ctx))
	ctx = xcontext.WithConfigs(ctx, xcontext.Configs(s.ctx))

	var data pageData
	resp, err := s.mintDomain.Get(ctx, &model.GetMintRequest{Account: r.URL.Query().Get("account")})
	if err != nil {
		cfg := xcontext.Configs(ctx)
		opts := mint.ViewOptions{ExplorerURL: cfg.Chain.ExplorerURL, CurrencySymbol: cfg.Chain.CurrencySymbol}
		data = newPageData(mint.Render(mint.State{Load: mint.LoadUnloaded}, opts))
		data.Error = "Error: " + err.Error()
	} else {
		data = newPageData(model.MintView(*resp))
	}

	html, err := common.ExecuteTemplate("mint", mintPage, data)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot render mint page: %v", err)
		http.Error(w, "Cannot render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write mint page: %v", err)
	}
}
