package zsbmsclient

import "github.com/pkg/errors"

var (
	// ErrLoginFailed indica que o portal não devolveu token CSRF ou cookie de sessão.
	ErrLoginFailed = errors.New("falha no login do ZSBMS")
	// ErrUnexpectedStatus indica uma resposta fora da faixa 2xx.
	ErrUnexpectedStatus = errors.New("status inesperado do ZSBMS")
	// ErrHTMLResponse indica que o portal devolveu uma página HTML (ou nada) em vez da planilha.
	ErrHTMLResponse = errors.New("ZSBMS devolveu HTML em vez de planilha")
)
