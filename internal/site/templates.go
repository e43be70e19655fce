package site

// pageTemplate is the Go html/template for the reader page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en"{{if and .Theme (ne .Theme "system")}} data-theme="{{.Theme}}"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-root-margin="{{.RootMargin}}" data-scroll-top="{{.ScrollTopThreshold}}"{{if .Live}} data-live="{{.BasePath}}ws/position"{{end}}>
  <button class="menu-toggle" id="menu-toggle" aria-label="Open contents">
    <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
      <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
    </svg>
  </button>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <div class="book-meta">
        <h2 class="book-title">{{.Title}}</h2>
        {{if .Author}}<p class="book-author">By {{.Author}}</p>{{end}}
      </div>
      <div class="sidebar-actions">
        <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
          <svg class="sun-icon" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
            <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
          </svg>
          <svg class="moon-icon" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
            <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
          </svg>
        </button>
        {{if .EditURL}}<a class="edit-link" href="{{.EditURL}}" target="_blank" rel="noopener noreferrer" title="Edit this book">
          <svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
            <path d="M12 20h9"/><path d="M16.5 3.5a2.1 2.1 0 0 1 3 3L7 19l-4 1 1-4z"/>
          </svg>
        </a>{{end}}
        <button class="menu-close" id="menu-close" aria-label="Close contents">&times;</button>
      </div>
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.TreeHTML}}
    </div>
  </nav>
  <main class="content">
    <article class="prose" id="book">
      {{.Content}}
    </article>
  </main>
  <button class="scroll-top" id="scroll-top" aria-label="Scroll to top">
    <svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
      <line x1="12" y1="19" x2="12" y2="5"/><polyline points="5 12 12 5 19 12"/>
    </svg>
  </button>
  <script id="book-owners" type="application/json">{{.Owners}}</script>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the reader page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-sidebar: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --sidebar-width: 320px;
  --content-max-width: 760px;
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1f2335;
  --code-bg: #1f2030;
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

@media (prefers-color-scheme: dark) {
  :root:not([data-theme="light"]) {
    --bg: #1a1b26;
    --bg-sidebar: #16171f;
    --text: #c0caf5;
    --text-muted: #565f89;
    --border: #292e42;
    --accent: #7aa2f7;
    --accent-light: #1f2335;
    --code-bg: #1f2030;
    --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
  }
}

/* ============ Layout ============ */
* { box-sizing: border-box; }

body {
  margin: 0;
  display: flex;
  background: var(--bg);
  color: var(--text);
  font: 16px/1.7 -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
}

.sidebar {
  position: sticky;
  top: 0;
  height: 100vh;
  width: var(--sidebar-width);
  flex-shrink: 0;
  display: flex;
  flex-direction: column;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
}

.sidebar-header {
  display: flex;
  justify-content: space-between;
  align-items: flex-start;
  padding: 24px;
  border-bottom: 1px solid var(--border);
}

.book-title { margin: 0; font-size: 1rem; }
.book-author { margin: 4px 0 0; font-size: 0.75rem; color: var(--text-muted); }

.sidebar-actions { display: flex; gap: 4px; align-items: center; }

.sidebar-actions button,
.sidebar-actions a {
  background: none;
  border: none;
  color: inherit;
  padding: 4px;
  border-radius: 4px;
  cursor: pointer;
}

.sidebar-actions button:hover,
.sidebar-actions a:hover { background: var(--accent-light); }

.sidebar-tree { flex: 1; overflow-y: auto; padding: 16px; }

.content { flex: 1; min-width: 0; padding: 48px 32px; }

.prose { max-width: var(--content-max-width); margin: 0 auto; }
.prose h1, .prose h2, .prose h3 { scroll-margin-top: 24px; }
.prose pre { background: var(--code-bg); padding: 16px; border-radius: 6px; overflow-x: auto; }
.prose code { font-size: 0.9em; }

/* ============ Accordion ============ */
.chapter { margin-bottom: 4px; }

.chapter-link,
.sub-link {
  display: block;
  color: var(--text);
  text-decoration: none;
  border-radius: 8px;
  transition: background 0.2s, transform 0.2s;
}

.chapter-link { padding: 10px 16px; font-weight: 600; font-size: 0.9rem; opacity: 0.8; }
.chapter.expanded > .chapter-link { background: var(--accent-light); opacity: 1; box-shadow: 0 1px 2px rgba(0,0,0,0.05); }
.chapter-link:hover { background: var(--accent-light); }
.chapter-link.active { color: var(--accent); opacity: 1; }

.sub-chapters { display: none; list-style: none; margin: 4px 0 8px; padding: 0; }
.chapter.expanded > .sub-chapters { display: block; }

.sub-link { margin-left: 16px; padding: 6px 16px; opacity: 0.7; }
.sub-link:hover { background: var(--accent-light); transform: translateX(4px); }
.sub-link.level-2 { font-size: 0.85rem; font-weight: 500; }
.sub-link.level-3 { font-size: 0.75rem; }
.sub-link.active { background: var(--accent-light); color: var(--accent); opacity: 1; font-weight: 500; }

/* ============ Theme toggle ============ */
.moon-icon { display: none; }
[data-theme="dark"] .sun-icon { display: none; }
[data-theme="dark"] .moon-icon { display: inline; }

/* ============ Scroll to top ============ */
.scroll-top {
  display: none;
  position: fixed;
  right: 32px;
  bottom: 32px;
  z-index: 50;
  width: 40px;
  height: 40px;
  border: none;
  border-radius: 50%;
  background: var(--accent);
  color: #fff;
  box-shadow: var(--shadow-lg);
  cursor: pointer;
}

.scroll-top.visible { display: flex; align-items: center; justify-content: center; }

/* ============ Mobile drawer ============ */
.menu-toggle, .menu-close, .sidebar-overlay { display: none; }

@media (max-width: 1024px) {
  .menu-toggle {
    display: block;
    position: fixed;
    top: 16px;
    left: 16px;
    z-index: 50;
    padding: 8px;
    border: none;
    border-radius: 6px;
    background: var(--bg);
    color: var(--text);
    box-shadow: var(--shadow-lg);
  }

  .menu-close { display: inline; font-size: 1.25rem; line-height: 1; }

  .sidebar {
    position: fixed;
    left: 0;
    z-index: 50;
    transform: translateX(-100%);
    transition: transform 0.3s;
  }

  .sidebar.open { transform: translateX(0); }

  .sidebar-overlay.open {
    display: block;
    position: fixed;
    inset: 0;
    z-index: 40;
    background: rgba(0,0,0,0.5);
  }

  .content { padding: 72px 16px 32px; }
}
`

// jsContent is the client script for the reader page. It reports which
// heading is in view, expands the chapter that owns it, and handles the
// sidebar chrome.
const jsContent = `(function() {
  var body = document.body;
  var owners = JSON.parse(document.getElementById('book-owners').textContent || '{}');
  var sidebar = document.getElementById('sidebar');
  var overlay = document.getElementById('sidebar-overlay');
  var scrollTop = document.getElementById('scroll-top');
  var socket = null;
  var activeId = '';
  var openId = '';

  // ============ Position ============
  function setPosition(id, chapterId) {
    activeId = id;
    document.querySelectorAll('#toc a.active').forEach(function(el) {
      el.classList.remove('active');
    });
    var link = document.querySelector('#toc a[data-target="' + CSS.escape(id) + '"]');
    if (link) link.classList.add('active');
    // A chapter the reader collapsed stays collapsed until the position
    // moves to another chapter.
    if (chapterId && chapterId !== openId) openChapter(chapterId);
  }

  // Only one chapter is expanded at a time.
  function openChapter(chapterId) {
    openId = chapterId;
    document.querySelectorAll('.chapter').forEach(function(el) {
      el.classList.toggle('expanded', el.getAttribute('data-chapter') === chapterId);
    });
  }

  function toggleChapter(chapterId) {
    var el = document.querySelector('.chapter[data-chapter="' + CSS.escape(chapterId) + '"]');
    if (el && el.classList.contains('expanded')) {
      el.classList.remove('expanded');
      openId = chapterId;
    } else {
      openChapter(chapterId);
    }
  }

  function report(type, id) {
    if (!id || id === activeId) return;
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify({ type: type, id: id }));
    }
    setPosition(id, owners[id] || '');
  }

  // ============ Live position (server mode) ============
  var live = body.getAttribute('data-live');
  if (live && 'WebSocket' in window) {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    socket = new WebSocket(proto + location.host + live);
    socket.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'position' && msg.active_id) {
        setPosition(msg.active_id, msg.chapter_id);
      }
    };
  }

  // ============ Visibility ============
  var headings = document.querySelectorAll('.prose h1[id], .prose h2[id], .prose h3[id]');
  if ('IntersectionObserver' in window) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting) report('visible', entry.target.id);
      });
    }, { rootMargin: body.getAttribute('data-root-margin') || '-20% 0px -70% 0px' });
    headings.forEach(function(h) { observer.observe(h); });
    window.addEventListener('pagehide', function() { observer.disconnect(); });
  }

  // ============ Navigation ============
  function closeDrawer() {
    sidebar.classList.remove('open');
    overlay.classList.remove('open');
  }

  document.querySelectorAll('#toc a[data-target]').forEach(function(link) {
    link.addEventListener('click', function(e) {
      e.preventDefault();
      var id = link.getAttribute('data-target');
      if (link.classList.contains('chapter-link')) toggleChapter(id);
      var target = document.getElementById(id);
      if (target) target.scrollIntoView({ behavior: 'smooth' });
      if (history.replaceState) history.replaceState(null, '', '#' + id);
      closeDrawer();
      report('click', id);
    });
  });

  document.getElementById('menu-toggle').addEventListener('click', function() {
    sidebar.classList.add('open');
    overlay.classList.add('open');
  });
  document.getElementById('menu-close').addEventListener('click', closeDrawer);
  overlay.addEventListener('click', closeDrawer);

  if (location.hash) report('click', decodeURIComponent(location.hash.slice(1)));

  // ============ Scroll to top ============
  var threshold = parseInt(body.getAttribute('data-scroll-top') || '400', 10);
  window.addEventListener('scroll', function() {
    scrollTop.classList.toggle('visible', window.scrollY > threshold);
  });
  scrollTop.addEventListener('click', function() {
    window.scrollTo({ top: 0, behavior: 'smooth' });
  });

  // ============ Theme ============
  var root = document.documentElement;
  var saved = localStorage.getItem('bookreader-theme');
  if (saved) root.setAttribute('data-theme', saved);
  document.getElementById('theme-toggle').addEventListener('click', function() {
    var current = root.getAttribute('data-theme');
    if (!current) {
      current = window.matchMedia('(prefers-color-scheme: dark)').matches ? 'dark' : 'light';
    }
    var next = current === 'dark' ? 'light' : 'dark';
    root.setAttribute('data-theme', next);
    localStorage.setItem('bookreader-theme', next);
  });
})();
`
