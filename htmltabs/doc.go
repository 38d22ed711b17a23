// Package htmltabs is the server-rendered HTML binding of the tab widget.
//
// Slots use the "tab-" and "panel-" prefixes. The markup carries the roles
// and ARIA attributes external tooling relies on:
//
//	<div data-tabs>
//	  <div data-tab-list role="tablist">
//	    <button role="tab" id="tab-x" aria-selected="true" tabindex="0">
//	  <div role="tabpanel" aria-labelledby="tab-x">
package htmltabs
