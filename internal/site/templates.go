package site

// layoutTemplate wraps every full page. Pages define the "content" template.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteName}}</title>
  <meta name="description" content="Browse the Summa Theologica of Saint Thomas Aquinas by part, treatise, question and article.">
  <link rel="stylesheet" href="/static/style.css">
  <script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
</head>
<body>
  <header class="site-header">
    <a href="/" class="brand">{{.SiteName}}</a>
    <nav>
      <a href="/explore">Explore</a>
      <a href="/search">Search</a>
    </nav>
    <button class="search-open" id="search-open" aria-label="Open search">Search&hellip; <kbd>/</kbd></button>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">&#9680;</button>
  </header>
  <main class="content">
    {{if .Crumbs}}
    <nav class="breadcrumb" aria-label="breadcrumb">
      <ol>
      {{- $last := len .Crumbs | add -1}}
      {{- range $i, $c := .Crumbs}}
        {{if eq $i $last}}<li aria-current="page">{{$c.Title}}</li>{{else}}<li><a href="{{$c.Href}}">{{$c.Title}}</a></li>{{end}}
      {{- end}}
      </ol>
    </nav>
    {{end}}
    {{template "content" .}}
  </main>
  <dialog class="search-dialog" id="search-dialog">
    <form method="dialog" class="search-dialog-header">
      <input type="search" id="live-query" placeholder="Search the Summa..." autocomplete="off">
      <button value="close" aria-label="Close">&times;</button>
    </form>
    <div class="search-dialog-results" id="live-results"></div>
  </dialog>
  <footer class="site-footer">
    <span>{{.SiteName}}</span>
    <span>Text of the Summa Theologica, translated by the Fathers of the English Dominican Province.</span>
  </footer>
  <script src="/static/app.js"></script>
</body>
</html>`

// resultsTemplate renders search hits. It is the fragment returned to HTMX.
const resultsTemplate = `<div class="results" id="search-results">
  {{- if .Error}}
  <p class="notice error">{{.Error}}</p>
  {{- else if .Query}}
  <p class="results-summary">{{len .Hits}} result{{if ne (len .Hits) 1}}s{{end}} for &ldquo;{{.Query}}&rdquo;</p>
  <ul class="hits">
    {{- range .Hits}}
    <li class="hit">
      <a href="{{.Href}}">
        <span class="hit-title">{{.Title}}</span>
        {{if .SnippetHTML}}<span class="hit-snippet">{{.SnippetHTML}}</span>{{end}}
        <span class="hit-label">{{.Label}}</span>
      </a>
    </li>
    {{- end}}
  </ul>
  {{- end}}
</div>`

const homeTemplate = `<section class="hero">
  <h1>Explore the Depths of Aquinas' Masterpiece.</h1>
  <p class="lead">Your guide to the Summa Theologica. Browse the whole work by part, treatise,
  question and article, or search it for a topic.</p>
  <a class="button" href="/explore">Start now</a>
</section>
<section class="about">
  <h2>About the Summa Theologica</h2>
  <p>Written by Saint Thomas Aquinas in the 13th century, the Summa is organised as a series of
  questions and answers. Each part is divided into treatises, questions and articles:</p>
  <ul>
    <li><strong>Parts</strong> are the major divisions of the work.</li>
    <li><strong>Treatises</strong> are subsections of a part on a specific topic.</li>
    <li><strong>Questions</strong> are inquiries into particular aspects of that topic.</li>
    <li><strong>Articles</strong> each present an issue, the objections to it, a counter-argument
    and Aquinas' answer with replies to the objections.</li>
  </ul>
  {{with .Content.Stats}}
  <p class="stats">This edition holds {{.Parts}} parts, {{.Treatises}} treatises,
  {{.Questions}} questions and {{.Articles}} articles.</p>
  {{end}}
</section>`

const listTemplate = `{{with .Content}}<section class="list">
  <h1>{{.Heading}}</h1>
  {{if .Description}}<div class="description">{{lines .Description}}</div>{{end}}
  <h2>{{.Subheading}}</h2>
  <ul class="items">
    {{- range .Items}}
    <li><a href="{{.Href}}"><span>{{.Title}}</span><span class="arrow">&rarr;</span></a></li>
    {{- end}}
  </ul>
</section>{{end}}`

const articleTemplate = `{{with .Content}}{{with .Detail}}<article class="article">
  <h1>{{.Article.Title}}</h1>
  <section class="objections">
    <h2>Objections</h2>
    {{- range .Objections}}
    <div class="paragraph"><h3>Objection {{.ID}}</h3>{{lines .Text}}</div>
    {{- else}}
    <p class="muted">No objections.</p>
    {{- end}}
  </section>
  <section class="answer">
    <h2>Answer</h2>
    {{if .Counter}}<div class="counter">{{lines .Counter}}</div>{{end}}
    <div class="body">{{lines .Body}}</div>
  </section>
  <section class="replies">
    <h2>Replies</h2>
    {{- $detail := .}}
    {{- range .Replies}}
    <div class="paragraph"><h3>{{$detail.ReplyLabel .}}</h3>{{lines .Text}}</div>
    {{- else}}
    <p class="muted">No replies.</p>
    {{- end}}
  </section>
</article>{{end}}
<nav class="pager">
  {{with .PrevLink}}<a class="button prev" href="{{.Href}}" rel="prev">&larr; {{.Title}}</a>{{else}}<span></span>{{end}}
  {{with .NextLink}}<a class="button next" href="{{.Href}}" rel="next">{{.Title}} &rarr;</a>{{end}}
</nav>{{end}}`

const searchTemplate = `<section class="search">
  <h1>Search</h1>
  <form action="/search" method="get" hx-get="/search" hx-target="#search-results" hx-swap="outerHTML"
        hx-trigger="submit, input changed delay:300ms from:#q">
    <input type="search" id="q" name="q" value="{{.Query}}" placeholder="Search the Summa..." autocomplete="off">
    <button type="submit" class="button">Search</button>
  </form>
  {{template "results" .Content}}
</section>`

const notFoundTemplate = `<section class="notfound">
  <h1>Page not found</h1>
  <p>Nothing in the Summa lives at <code>{{.Content}}</code>.</p>
  <a class="button" href="/explore">Back to the parts</a>
</section>`

const errorTemplate = `<section class="error">
  <h1>Uh oh! Something went wrong.</h1>
  <p class="notice error">{{.Content}}</p>
  <a class="button" href="">Try again</a>
</section>`
